package store

import (
	"context"
	"fmt"
	"sort"

	"prepkit/ent"
	"prepkit/ent/llmrequestevent"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMEventRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, llmRecord(row))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := llmRecord(row)
	return &rec, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, func(row *ent.LLMRequestEvent) string { return row.Purpose }, true)
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsage(ctx, func(row *ent.LLMRequestEvent) string { return row.Model }, false)
}

// llmUsage folds all LLM events into per-key aggregates. Event volume is
// low enough that folding in memory beats a grouped SQL query for clarity.
func (r *eventRepo) llmUsage(ctx context.Context, keyOf func(*ent.LLMRequestEvent) string, byPurpose bool) ([]LLMUsage, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byKey := make(map[string]*LLMUsage)
	latency := make(map[string]int64)
	for _, row := range rows {
		key := keyOf(row)
		u, ok := byKey[key]
		if !ok {
			u = &LLMUsage{}
			if byPurpose {
				u.Purpose = key
			} else {
				u.Model = key
			}
			byKey[key] = u
		}
		u.Calls++
		u.InputTokens += row.InputTokens
		u.OutputTokens += row.OutputTokens
		latency[key] += row.LatencyMs
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]LLMUsage, 0, len(keys))
	for _, k := range keys {
		u := *byKey[k]
		if u.Calls > 0 {
			u.AvgLatencyMs = latency[k] / int64(u.Calls)
		}
		out = append(out, u)
	}
	return out, nil
}

func llmRecord(row *ent.LLMRequestEvent) LLMEventRecord {
	return LLMEventRecord{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
	}
}
