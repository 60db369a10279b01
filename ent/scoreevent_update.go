// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"prepkit/ent/predicate"
	"prepkit/ent/scoreevent"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ScoreEventUpdate is the builder for updating ScoreEvent entities.
type ScoreEventUpdate struct {
	config
	hooks    []Hook
	mutation *ScoreEventMutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdate) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdate) SetSessionID(v string) *ScoreEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableSessionID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ScoreEventUpdate) SetQuestionID(v string) *ScoreEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableQuestionID(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreEventUpdate) SetScore(v int) *ScoreEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableScore(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreEventUpdate) AddScore(v int) *ScoreEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ScoreEventUpdate) SetFeedback(v string) *ScoreEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableFeedback(v *string) *ScoreEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetHintPenalty sets the "hint_penalty" field.
func (_u *ScoreEventUpdate) SetHintPenalty(v int) *ScoreEventUpdate {
	_u.mutation.ResetHintPenalty()
	_u.mutation.SetHintPenalty(v)
	return _u
}

// SetNillableHintPenalty sets the "hint_penalty" field if the given value is not nil.
func (_u *ScoreEventUpdate) SetNillableHintPenalty(v *int) *ScoreEventUpdate {
	if v != nil {
		_u.SetHintPenalty(*v)
	}
	return _u
}

// AddHintPenalty adds value to the "hint_penalty" field.
func (_u *ScoreEventUpdate) AddHintPenalty(v int) *ScoreEventUpdate {
	_u.mutation.AddHintPenalty(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdate) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScoreEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScoreEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scoreevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := scoreevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(scoreevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(scoreevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintPenalty(); ok {
		_spec.SetField(scoreevent.FieldHintPenalty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintPenalty(); ok {
		_spec.AddField(scoreevent.FieldHintPenalty, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScoreEventUpdateOne is the builder for updating a single ScoreEvent entity.
type ScoreEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScoreEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ScoreEventUpdateOne) SetSessionID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableSessionID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *ScoreEventUpdateOne) SetQuestionID(v string) *ScoreEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableQuestionID(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ScoreEventUpdateOne) SetScore(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableScore(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ScoreEventUpdateOne) AddScore(v int) *ScoreEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *ScoreEventUpdateOne) SetFeedback(v string) *ScoreEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableFeedback(v *string) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// SetHintPenalty sets the "hint_penalty" field.
func (_u *ScoreEventUpdateOne) SetHintPenalty(v int) *ScoreEventUpdateOne {
	_u.mutation.ResetHintPenalty()
	_u.mutation.SetHintPenalty(v)
	return _u
}

// SetNillableHintPenalty sets the "hint_penalty" field if the given value is not nil.
func (_u *ScoreEventUpdateOne) SetNillableHintPenalty(v *int) *ScoreEventUpdateOne {
	if v != nil {
		_u.SetHintPenalty(*v)
	}
	return _u
}

// AddHintPenalty adds value to the "hint_penalty" field.
func (_u *ScoreEventUpdateOne) AddHintPenalty(v int) *ScoreEventUpdateOne {
	_u.mutation.AddHintPenalty(v)
	return _u
}

// Mutation returns the ScoreEventMutation object of the builder.
func (_u *ScoreEventUpdateOne) Mutation() *ScoreEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScoreEventUpdate builder.
func (_u *ScoreEventUpdateOne) Where(ps ...predicate.ScoreEvent) *ScoreEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScoreEventUpdateOne) Select(field string, fields ...string) *ScoreEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScoreEvent entity.
func (_u *ScoreEventUpdateOne) Save(ctx context.Context) (*ScoreEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) SaveX(ctx context.Context) *ScoreEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScoreEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScoreEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScoreEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := scoreevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := scoreevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ScoreEvent.question_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ScoreEventUpdateOne) sqlSave(ctx context.Context) (_node *ScoreEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scoreevent.Table, scoreevent.Columns, sqlgraph.NewFieldSpec(scoreevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScoreEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scoreevent.FieldID)
		for _, f := range fields {
			if !scoreevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scoreevent.FieldID {
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
		_spec.SetField(scoreevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(scoreevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(scoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(scoreevent.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(scoreevent.FieldFeedback, field.TypeString, value)
	}
	if value, ok := _u.mutation.HintPenalty(); ok {
		_spec.SetField(scoreevent.FieldHintPenalty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintPenalty(); ok {
		_spec.AddField(scoreevent.FieldHintPenalty, field.TypeInt, value)
	}
	_node = &ScoreEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scoreevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
