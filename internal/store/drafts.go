package store

import (
	"context"
	"fmt"
	"time"

	"prepkit/ent"
	"prepkit/ent/draftsnapshot"
	entschema "prepkit/ent/schema"
	"prepkit/internal/drafts"
)

// draftRepo implements DraftRepo using the ent client.
type draftRepo struct {
	client *ent.Client
}

func (r *draftRepo) SaveDrafts(ctx context.Context, sessionID string, snap *drafts.Snapshot) error {
	entries := make([]entschema.DraftEntry, 0, snap.Len())
	for _, e := range snap.Entries() {
		entries = append(entries, entschema.DraftEntry{
			QuestionID: e.QuestionID,
			Content:    e.Content,
		})
	}

	existing, err := r.client.DraftSnapshot.Query().
		Where(draftsnapshot.SessionID(sessionID)).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetSavedAt(time.Now()).
			SetEntries(entries).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update draft snapshot: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.DraftSnapshot.Create().
			SetSessionID(sessionID).
			SetSavedAt(time.Now()).
			SetEntries(entries).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create draft snapshot: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query draft snapshot: %w", err)
	}
}

func (r *draftRepo) LoadDrafts(ctx context.Context, sessionID string) (*drafts.Snapshot, time.Time, error) {
	row, err := r.client.DraftSnapshot.Query().
		Where(draftsnapshot.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, fmt.Errorf("query draft snapshot: %w", err)
	}

	snap := drafts.NewSnapshot()
	for _, e := range row.Entries {
		snap.Set(e.QuestionID, e.Content)
	}
	return snap, row.SavedAt, nil
}

func (r *draftRepo) DeleteDrafts(ctx context.Context, sessionID string) error {
	_, err := r.client.DraftSnapshot.Delete().
		Where(draftsnapshot.SessionID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete draft snapshot: %w", err)
	}
	return nil
}
