// internal/fixtures/store.go

// Package fixtures provides read-only access to the static JSON document that
// feeds the dashboard and allocation views and seeds the players table. The
// document is read once when the Store is constructed and is immutable for the
// life of the process; consumers receive the Store by injection.
package fixtures

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/baddersbot/portal/internal/models"
)

//go:embed mock_data.json
var embedded embed.FS

// Fixture collection and document keys.
const (
	KeyPlayerDirectory    = "player_directory"
	KeyPlayerSummaries    = "player_summaries"
	KeySessionSummaries   = "session_summaries"
	KeySessionAllocations = "session_allocations"
	KeyWeeklySchedule     = "weekly_schedule"
)

// ErrTypeMismatch reports that a fixture key holds the wrong JSON shape for
// the accessor used (an object where a collection was expected, or the
// reverse). It is a configuration error and fatal at startup.
var ErrTypeMismatch = errors.New("fixture shape mismatch")

// Store holds the parsed fixture document.
type Store struct {
	doc map[string]json.RawMessage
}

// Load reads and parses the fixture document at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture file: %w", err)
	}
	return parse(data)
}

// LoadEmbedded parses the fixture document compiled into the binary.
func LoadEmbedded() (*Store, error) {
	data, err := embedded.ReadFile("mock_data.json")
	if err != nil {
		return nil, fmt.Errorf("reading embedded fixtures: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Store, error) {
	doc := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing fixture document: %w", err)
	}
	return &Store{doc: doc}, nil
}

// Collection decodes the list stored under key into dst, which must be a
// pointer to a slice. An absent key leaves dst untouched (an empty
// collection); a non-list value returns ErrTypeMismatch.
func (s *Store) Collection(key string, dst any) error {
	raw, ok := s.doc[key]
	if !ok {
		return nil
	}
	if first := firstByte(raw); first != '[' {
		return fmt.Errorf("fixture key %q is not a list: %w", key, ErrTypeMismatch)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding fixture collection %q: %w", key, err)
	}
	return nil
}

// Document decodes the single record stored under key into dst, which must be
// a pointer to a struct. An absent key leaves dst at its zero value; a
// non-object value returns ErrTypeMismatch.
func (s *Store) Document(key string, dst any) error {
	raw, ok := s.doc[key]
	if !ok {
		return nil
	}
	if first := firstByte(raw); first != '{' {
		return fmt.Errorf("fixture key %q is not a document: %w", key, ErrTypeMismatch)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decoding fixture document %q: %w", key, err)
	}
	return nil
}

// Verify decodes every known key into its typed record so that a malformed
// fixture document fails at startup instead of mid-request.
func (s *Store) Verify() error {
	var directory []models.PlayerRecord
	if err := s.Collection(KeyPlayerDirectory, &directory); err != nil {
		return err
	}
	var summaries []models.PlayerSummary
	if err := s.Collection(KeyPlayerSummaries, &summaries); err != nil {
		return err
	}
	var sessions []models.SessionSummary
	if err := s.Collection(KeySessionSummaries, &sessions); err != nil {
		return err
	}
	var allocations []models.SessionAllocationRecord
	if err := s.Collection(KeySessionAllocations, &allocations); err != nil {
		return err
	}
	var schedule models.WeeklySchedule
	if err := s.Document(KeyWeeklySchedule, &schedule); err != nil {
		return err
	}
	return nil
}

// PlayerDirectory returns the seed roster.
func (s *Store) PlayerDirectory() ([]models.PlayerRecord, error) {
	var records []models.PlayerRecord
	if err := s.Collection(KeyPlayerDirectory, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
