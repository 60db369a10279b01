// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"prepkit/ent/draftsnapshot"
	"prepkit/ent/predicate"
	"prepkit/ent/schema"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// DraftSnapshotUpdate is the builder for updating DraftSnapshot entities.
type DraftSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *DraftSnapshotMutation
}

// Where appends a list predicates to the DraftSnapshotUpdate builder.
func (_u *DraftSnapshotUpdate) Where(ps ...predicate.DraftSnapshot) *DraftSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *DraftSnapshotUpdate) SetSessionID(v string) *DraftSnapshotUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DraftSnapshotUpdate) SetNillableSessionID(v *string) *DraftSnapshotUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *DraftSnapshotUpdate) SetSavedAt(v time.Time) *DraftSnapshotUpdate {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *DraftSnapshotUpdate) SetNillableSavedAt(v *time.Time) *DraftSnapshotUpdate {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *DraftSnapshotUpdate) SetEntries(v []schema.DraftEntry) *DraftSnapshotUpdate {
	_u.mutation.SetEntries(v)
	return _u
}

// AppendEntries appends value to the "entries" field.
func (_u *DraftSnapshotUpdate) AppendEntries(v []schema.DraftEntry) *DraftSnapshotUpdate {
	_u.mutation.AppendEntries(v)
	return _u
}

// Mutation returns the DraftSnapshotMutation object of the builder.
func (_u *DraftSnapshotUpdate) Mutation() *DraftSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DraftSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DraftSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftSnapshotUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := draftsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DraftSnapshot.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DraftSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draftsnapshot.Table, draftsnapshot.Columns, sqlgraph.NewFieldSpec(draftsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(draftsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(draftsnapshot.FieldSavedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(draftsnapshot.FieldEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, draftsnapshot.FieldEntries, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draftsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DraftSnapshotUpdateOne is the builder for updating a single DraftSnapshot entity.
type DraftSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DraftSnapshotMutation
}

// SetSessionID sets the "session_id" field.
func (_u *DraftSnapshotUpdateOne) SetSessionID(v string) *DraftSnapshotUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *DraftSnapshotUpdateOne) SetNillableSessionID(v *string) *DraftSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSavedAt sets the "saved_at" field.
func (_u *DraftSnapshotUpdateOne) SetSavedAt(v time.Time) *DraftSnapshotUpdateOne {
	_u.mutation.SetSavedAt(v)
	return _u
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_u *DraftSnapshotUpdateOne) SetNillableSavedAt(v *time.Time) *DraftSnapshotUpdateOne {
	if v != nil {
		_u.SetSavedAt(*v)
	}
	return _u
}

// SetEntries sets the "entries" field.
func (_u *DraftSnapshotUpdateOne) SetEntries(v []schema.DraftEntry) *DraftSnapshotUpdateOne {
	_u.mutation.SetEntries(v)
	return _u
}

// AppendEntries appends value to the "entries" field.
func (_u *DraftSnapshotUpdateOne) AppendEntries(v []schema.DraftEntry) *DraftSnapshotUpdateOne {
	_u.mutation.AppendEntries(v)
	return _u
}

// Mutation returns the DraftSnapshotMutation object of the builder.
func (_u *DraftSnapshotUpdateOne) Mutation() *DraftSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the DraftSnapshotUpdate builder.
func (_u *DraftSnapshotUpdateOne) Where(ps ...predicate.DraftSnapshot) *DraftSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DraftSnapshotUpdateOne) Select(field string, fields ...string) *DraftSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DraftSnapshot entity.
func (_u *DraftSnapshotUpdateOne) Save(ctx context.Context) (*DraftSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DraftSnapshotUpdateOne) SaveX(ctx context.Context) *DraftSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DraftSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DraftSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DraftSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := draftsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DraftSnapshot.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *DraftSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *DraftSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(draftsnapshot.Table, draftsnapshot.Columns, sqlgraph.NewFieldSpec(draftsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DraftSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, draftsnapshot.FieldID)
		for _, f := range fields {
			if !draftsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != draftsnapshot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(draftsnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SavedAt(); ok {
		_spec.SetField(draftsnapshot.FieldSavedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Entries(); ok {
		_spec.SetField(draftsnapshot.FieldEntries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEntries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, draftsnapshot.FieldEntries, value)
		})
	}
	_node = &DraftSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{draftsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
