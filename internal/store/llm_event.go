package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// llmEventRow mirrors the llm_events table. Timestamps are stored as
// unix milliseconds to keep scanning portable across drivers.
type llmEventRow struct {
	ID           int    `db:"id"`
	CreatedAt    int64  `db:"created_at"`
	RunID        string `db:"run_id"`
	RequestID    string `db:"request_id"`
	Provider     string `db:"provider"`
	Model        string `db:"model"`
	Purpose      string `db:"purpose"`
	InputTokens  int    `db:"input_tokens"`
	OutputTokens int    `db:"output_tokens"`
	LatencyMs    int64  `db:"latency_ms"`
	Success      bool   `db:"success"`
	ErrorMessage string `db:"error_message"`
	RequestBody  string `db:"request_body"`
	ResponseBody string `db:"response_body"`
}

func (r llmEventRow) toEvent() LLMRequestEvent {
	return LLMRequestEvent{
		ID:        r.ID,
		Timestamp: time.UnixMilli(r.CreatedAt).UTC(),
		LLMRequestEventData: LLMRequestEventData{
			RunID:        r.RunID,
			RequestID:    r.RequestID,
			Provider:     r.Provider,
			Model:        r.Model,
			Purpose:      r.Purpose,
			InputTokens:  r.InputTokens,
			OutputTokens: r.OutputTokens,
			LatencyMs:    r.LatencyMs,
			Success:      r.Success,
			ErrorMessage: r.ErrorMessage,
			RequestBody:  r.RequestBody,
			ResponseBody: r.ResponseBody,
		},
	}
}

// eventRepo implements EventRepo on sqlx.
type eventRepo struct {
	db *sqlx.DB
}

const insertEventSQL = `
INSERT INTO llm_events (
	created_at, run_id, request_id, provider, model, purpose,
	input_tokens, output_tokens, latency_ms, success,
	error_message, request_body, response_body
) VALUES (
	:created_at, :run_id, :request_id, :provider, :model, :purpose,
	:input_tokens, :output_tokens, :latency_ms, :success,
	:error_message, :request_body, :response_body
)`

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	row := llmEventRow{
		CreatedAt:    time.Now().UnixMilli(),
		RunID:        data.RunID,
		RequestID:    data.RequestID,
		Provider:     data.Provider,
		Model:        data.Model,
		Purpose:      data.Purpose,
		InputTokens:  data.InputTokens,
		OutputTokens: data.OutputTokens,
		LatencyMs:    data.LatencyMs,
		Success:      data.Success,
		ErrorMessage: data.ErrorMessage,
		RequestBody:  data.RequestBody,
		ResponseBody: data.ResponseBody,
	}

	if _, err := r.db.NamedExecContext(ctx, insertEventSQL, row); err != nil {
		return fmt.Errorf("insert llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT * FROM llm_events`
	args := []any{}
	if opts.Purpose != "" {
		query += ` WHERE purpose = ?`
		args = append(args, opts.Purpose)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	var rows []llmEventRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	events := make([]LLMRequestEvent, len(rows))
	for i, row := range rows {
		events[i] = row.toEvent()
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	var row llmEventRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM llm_events WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get llm event %d: %w", id, err)
	}

	event := row.toEvent()
	return &event, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	const query = `
SELECT
	purpose,
	COUNT(*)                        AS calls,
	COALESCE(SUM(input_tokens), 0)  AS input_tokens,
	COALESCE(SUM(output_tokens), 0) AS output_tokens,
	CAST(COALESCE(AVG(latency_ms), 0) AS INTEGER) AS avg_latency_ms
FROM llm_events
GROUP BY purpose
ORDER BY purpose`

	var rows []struct {
		Purpose      string `db:"purpose"`
		Calls        int    `db:"calls"`
		InputTokens  int    `db:"input_tokens"`
		OutputTokens int    `db:"output_tokens"`
		AvgLatencyMs int64  `db:"avg_latency_ms"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("usage by purpose: %w", err)
	}

	usage := make([]PurposeUsage, len(rows))
	for i, row := range rows {
		usage[i] = PurposeUsage(row)
	}
	return usage, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	const query = `
SELECT
	model,
	COUNT(*)                        AS calls,
	COALESCE(SUM(input_tokens), 0)  AS input_tokens,
	COALESCE(SUM(output_tokens), 0) AS output_tokens
FROM llm_events
GROUP BY model
ORDER BY model`

	var rows []struct {
		Model        string `db:"model"`
		Calls        int    `db:"calls"`
		InputTokens  int    `db:"input_tokens"`
		OutputTokens int    `db:"output_tokens"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("usage by model: %w", err)
	}

	usage := make([]ModelUsage, len(rows))
	for i, row := range rows {
		usage[i] = ModelUsage(row)
	}
	return usage, nil
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM llm_events`); err != nil {
		return fmt.Errorf("reset llm events: %w", err)
	}
	return nil
}
