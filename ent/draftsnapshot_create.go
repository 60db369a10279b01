// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"prepkit/ent/draftsnapshot"
	"prepkit/ent/schema"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DraftSnapshotCreate is the builder for creating a DraftSnapshot entity.
type DraftSnapshotCreate struct {
	config
	mutation *DraftSnapshotMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *DraftSnapshotCreate) SetSessionID(v string) *DraftSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSavedAt sets the "saved_at" field.
func (_c *DraftSnapshotCreate) SetSavedAt(v time.Time) *DraftSnapshotCreate {
	_c.mutation.SetSavedAt(v)
	return _c
}

// SetNillableSavedAt sets the "saved_at" field if the given value is not nil.
func (_c *DraftSnapshotCreate) SetNillableSavedAt(v *time.Time) *DraftSnapshotCreate {
	if v != nil {
		_c.SetSavedAt(*v)
	}
	return _c
}

// SetEntries sets the "entries" field.
func (_c *DraftSnapshotCreate) SetEntries(v []schema.DraftEntry) *DraftSnapshotCreate {
	_c.mutation.SetEntries(v)
	return _c
}

// Mutation returns the DraftSnapshotMutation object of the builder.
func (_c *DraftSnapshotCreate) Mutation() *DraftSnapshotMutation {
	return _c.mutation
}

// Save creates the DraftSnapshot in the database.
func (_c *DraftSnapshotCreate) Save(ctx context.Context) (*DraftSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DraftSnapshotCreate) SaveX(ctx context.Context) *DraftSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DraftSnapshotCreate) defaults() {
	if _, ok := _c.mutation.SavedAt(); !ok {
		v := draftsnapshot.DefaultSavedAt()
		_c.mutation.SetSavedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DraftSnapshotCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "DraftSnapshot.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := draftsnapshot.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "DraftSnapshot.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SavedAt(); !ok {
		return &ValidationError{Name: "saved_at", err: errors.New(`ent: missing required field "DraftSnapshot.saved_at"`)}
	}
	if _, ok := _c.mutation.Entries(); !ok {
		return &ValidationError{Name: "entries", err: errors.New(`ent: missing required field "DraftSnapshot.entries"`)}
	}
	return nil
}

func (_c *DraftSnapshotCreate) sqlSave(ctx context.Context) (*DraftSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DraftSnapshotCreate) createSpec() (*DraftSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &DraftSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(draftsnapshot.Table, sqlgraph.NewFieldSpec(draftsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(draftsnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SavedAt(); ok {
		_spec.SetField(draftsnapshot.FieldSavedAt, field.TypeTime, value)
		_node.SavedAt = value
	}
	if value, ok := _c.mutation.Entries(); ok {
		_spec.SetField(draftsnapshot.FieldEntries, field.TypeJSON, value)
		_node.Entries = value
	}
	return _node, _spec
}

// DraftSnapshotCreateBulk is the builder for creating many DraftSnapshot entities in bulk.
type DraftSnapshotCreateBulk struct {
	config
	err      error
	builders []*DraftSnapshotCreate
}

// Save creates the DraftSnapshot entities in the database.
func (_c *DraftSnapshotCreateBulk) Save(ctx context.Context) ([]*DraftSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DraftSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DraftSnapshotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DraftSnapshotCreateBulk) SaveX(ctx context.Context) []*DraftSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DraftSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DraftSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
