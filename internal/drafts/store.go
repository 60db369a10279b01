// Package drafts holds in-progress, unsubmitted answer text per question.
// Drafts live only as long as their session; submitting a final answer
// discards the draft for that question.
package drafts

import "time"

// Draft is the scratch state for one question.
type Draft struct {
	QuestionID   string
	Content      string
	LastEditedAt time.Time
	AutoSavedAt  time.Time // zero until the first successful save
}

// Store is the per-session draft buffer. Writes are applied in call order;
// the most recent Set always wins. The Store enforces no length limit;
// input truncation is the UI layer's concern.
type Store struct {
	now       func() time.Time
	order     []string
	byID      map[string]*Draft
	lastSaved map[string]string // content as of the last successful save
}

// NewStore creates an empty draft store. A nil now defaults to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		now:       now,
		byID:      make(map[string]*Draft),
		lastSaved: make(map[string]string),
	}
}

// Set overwrites the draft for a question, creating it on first edit.
// Every call marks the draft dirty for the auto-save scheduler to observe.
func (s *Store) Set(questionID, content string) {
	d, ok := s.byID[questionID]
	if !ok {
		d = &Draft{QuestionID: questionID}
		s.byID[questionID] = d
		s.order = append(s.order, questionID)
	}
	d.Content = content
	d.LastEditedAt = s.now()
}

// Get returns the latest draft text, or the empty string if none exists.
func (s *Store) Get(questionID string) string {
	if d, ok := s.byID[questionID]; ok {
		return d.Content
	}
	return ""
}

// Draft returns a copy of the draft record and whether it exists.
func (s *Store) Draft(questionID string) (Draft, bool) {
	d, ok := s.byID[questionID]
	if !ok {
		return Draft{}, false
	}
	return *d, true
}

// Dirty reports whether the draft changed since its last successful save.
// A draft that was never saved is dirty unless it is empty.
func (s *Store) Dirty(questionID string) bool {
	d, ok := s.byID[questionID]
	if !ok {
		return false
	}
	saved, wasSaved := s.lastSaved[questionID]
	if !wasSaved {
		return d.Content != ""
	}
	return d.Content != saved
}

// MarkSaved records that the draft's current content was persisted.
func (s *Store) MarkSaved(questionID string) {
	d, ok := s.byID[questionID]
	if !ok {
		return
	}
	s.lastSaved[questionID] = d.Content
	d.AutoSavedAt = s.now()
}

// MarkAllSaved records that the current content of every draft was
// persisted, including drafts cleared to empty since the last save.
func (s *Store) MarkAllSaved() {
	for id := range s.byID {
		s.MarkSaved(id)
	}
}

// Discard removes the draft for a question, typically after its final
// answer is submitted.
func (s *Store) Discard(questionID string) {
	if _, ok := s.byID[questionID]; !ok {
		return
	}
	delete(s.byID, questionID)
	delete(s.lastSaved, questionID)
	for i, id := range s.order {
		if id == questionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Reset discards all drafts.
func (s *Store) Reset() {
	s.order = nil
	s.byID = make(map[string]*Draft)
	s.lastSaved = make(map[string]string)
}

// Snapshot returns the non-empty drafts as an ordered snapshot for
// persistence, in first-edit order.
func (s *Store) Snapshot() *Snapshot {
	snap := NewSnapshot()
	for _, id := range s.order {
		if d := s.byID[id]; d.Content != "" {
			snap.Set(id, d.Content)
		}
	}
	return snap
}

// Seed restores drafts from a persisted snapshot taken at savedAt.
// A persisted value never overwrites a newer in-memory draft: questions
// edited after savedAt are left untouched. Seeded drafts start clean
// (not dirty) since storage already holds their content.
func (s *Store) Seed(snap *Snapshot, savedAt time.Time) {
	if snap == nil {
		return
	}
	for _, e := range snap.Entries() {
		if d, ok := s.byID[e.QuestionID]; ok && d.LastEditedAt.After(savedAt) {
			continue
		}
		d, ok := s.byID[e.QuestionID]
		if !ok {
			d = &Draft{QuestionID: e.QuestionID}
			s.byID[e.QuestionID] = d
			s.order = append(s.order, e.QuestionID)
		}
		d.Content = e.Content
		d.LastEditedAt = savedAt
		d.AutoSavedAt = savedAt
		s.lastSaved[e.QuestionID] = e.Content
	}
}
