package users

import (
	"testing"

	"github.com/baddersbot/portal/internal/models"
)

func roster() []models.Player {
	return []models.Player{
		{ID: "player-amelia-chan", Name: "Amelia Chan", Grade: "A", PaymentStatus: models.PaymentPaid},
		{ID: "player-zane-murray", Name: "Zane Murray", Grade: "B2", PaymentStatus: models.PaymentOverdue, AvailabilityNote: "Travelling until May"},
		{ID: "player-noah-patel", Name: "Noah Patel", Grade: "B1", PaymentStatus: models.PaymentPending},
	}
}

func TestFilterPlayersEmptyQueryKeepsAll(t *testing.T) {
	players := roster()
	if got := filterPlayers(players, ""); len(got) != len(players) {
		t.Fatalf("got %d players, want %d", len(got), len(players))
	}
}

func TestFilterPlayersMatchesFields(t *testing.T) {
	players := roster()
	cases := []struct {
		name  string
		query string
		want  []string
	}{
		{"name substring", "amelia", []string{"player-amelia-chan"}},
		{"case insensitive", "AMELIA", []string{"player-amelia-chan"}},
		{"grade", "b1", []string{"player-noah-patel"}},
		{"payment status", "overdue", []string{"player-zane-murray"}},
		{"availability note", "travelling", []string{"player-zane-murray"}},
		{"no match", "zzz", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := filterPlayers(players, tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d players, want %d", len(got), len(tc.want))
			}
			for i, player := range got {
				if player.ID != tc.want[i] {
					t.Fatalf("players[%d].ID = %q, want %q", i, player.ID, tc.want[i])
				}
			}
		})
	}
}
