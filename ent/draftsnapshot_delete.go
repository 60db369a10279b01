// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"prepkit/ent/draftsnapshot"
	"prepkit/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DraftSnapshotDelete is the builder for deleting a DraftSnapshot entity.
type DraftSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *DraftSnapshotMutation
}

// Where appends a list predicates to the DraftSnapshotDelete builder.
func (_d *DraftSnapshotDelete) Where(ps ...predicate.DraftSnapshot) *DraftSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DraftSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DraftSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DraftSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(draftsnapshot.Table, sqlgraph.NewFieldSpec(draftsnapshot.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DraftSnapshotDeleteOne is the builder for deleting a single DraftSnapshot entity.
type DraftSnapshotDeleteOne struct {
	_d *DraftSnapshotDelete
}

// Where appends a list predicates to the DraftSnapshotDelete builder.
func (_d *DraftSnapshotDeleteOne) Where(ps ...predicate.DraftSnapshot) *DraftSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DraftSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{draftsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DraftSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
