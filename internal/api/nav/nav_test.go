package nav

import "testing"

func TestLinksMarksActive(t *testing.T) {
	links := Links("allocation")

	active := 0
	for _, link := range links {
		if link.Active {
			active++
			if link.Key != "allocation" {
				t.Fatalf("active link = %q, want allocation", link.Key)
			}
		}
	}
	if active != 1 {
		t.Fatalf("got %d active links, want 1", active)
	}
}

func TestLinksDoesNotMutateShared(t *testing.T) {
	Links("users")
	for _, link := range Links("") {
		if link.Active {
			t.Fatalf("link %q stayed active across calls", link.Key)
		}
	}
}
