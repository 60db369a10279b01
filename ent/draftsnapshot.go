// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"prepkit/ent/draftsnapshot"
	"prepkit/ent/schema"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// DraftSnapshot is the model entity for the DraftSnapshot schema.
type DraftSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Session these drafts belong to
	SessionID string `json:"session_id,omitempty"`
	// When this snapshot was persisted
	SavedAt time.Time `json:"saved_at,omitempty"`
	// Ordered question_id/content pairs
	Entries      []schema.DraftEntry `json:"entries,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DraftSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case draftsnapshot.FieldEntries:
			values[i] = new([]byte)
		case draftsnapshot.FieldID:
			values[i] = new(sql.NullInt64)
		case draftsnapshot.FieldSessionID:
			values[i] = new(sql.NullString)
		case draftsnapshot.FieldSavedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DraftSnapshot fields.
func (_m *DraftSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case draftsnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case draftsnapshot.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case draftsnapshot.FieldSavedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field saved_at", values[i])
			} else if value.Valid {
				_m.SavedAt = value.Time
			}
		case draftsnapshot.FieldEntries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Entries); err != nil {
					return fmt.Errorf("unmarshal field entries: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DraftSnapshot.
// This includes values selected through modifiers, order, etc.
func (_m *DraftSnapshot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DraftSnapshot.
// Note that you need to call DraftSnapshot.Unwrap() before calling this method if this DraftSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DraftSnapshot) Update() *DraftSnapshotUpdateOne {
	return NewDraftSnapshotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DraftSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DraftSnapshot) Unwrap() *DraftSnapshot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DraftSnapshot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DraftSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("DraftSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("saved_at=")
	builder.WriteString(_m.SavedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("entries=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entries))
	builder.WriteByte(')')
	return builder.String()
}

// DraftSnapshots is a parsable slice of DraftSnapshot.
type DraftSnapshots []*DraftSnapshot
