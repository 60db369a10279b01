package drafts

import (
	"encoding/json"
	"fmt"
)

// Entry is one questionId→content pair in a Snapshot.
type Entry struct {
	QuestionID string `json:"question_id"`
	Content    string `json:"content"`
}

// Snapshot is an ordered questionId→content container, the unit of exchange
// with the persistence collaborator. JSON serialization uses array form so
// insertion order survives a round trip (maps would not preserve it).
type Snapshot struct {
	entries []Entry
	index   map[string]int
}

// NewSnapshot creates an empty Snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{index: make(map[string]int)}
}

// Set inserts or replaces the content for a question. New questions keep
// insertion order; existing questions are updated in place.
func (s *Snapshot) Set(questionID, content string) {
	if i, ok := s.index[questionID]; ok {
		s.entries[i].Content = content
		return
	}
	s.index[questionID] = len(s.entries)
	s.entries = append(s.entries, Entry{QuestionID: questionID, Content: content})
}

// Get returns the content for a question and whether it exists.
func (s *Snapshot) Get(questionID string) (string, bool) {
	i, ok := s.index[questionID]
	if !ok {
		return "", false
	}
	return s.entries[i].Content, true
}

// Len returns the number of entries.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Snapshot) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// MarshalJSON encodes the snapshot as a JSON array of entries.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	if s.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.entries)
}

// UnmarshalJSON decodes a JSON array of entries, preserving order.
// A duplicate question id keeps the last occurrence.
func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode draft snapshot: %w", err)
	}
	s.entries = nil
	s.index = make(map[string]int, len(entries))
	for _, e := range entries {
		s.Set(e.QuestionID, e.Content)
	}
	return nil
}

// Equal reports whether two snapshots hold the same entries in the same order.
func (s *Snapshot) Equal(other *Snapshot) bool {
	if other == nil || len(s.entries) != len(other.entries) {
		return false
	}
	for i, e := range s.entries {
		if other.entries[i] != e {
			return false
		}
	}
	return true
}
