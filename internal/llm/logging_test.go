package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Lucas345987/Python-Master/internal/store"
)

// captureRepo records appended events in memory.
type captureRepo struct {
	events []store.LLMRequestEventData
}

func (c *captureRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	c.events = append(c.events, data)
	return nil
}

func (c *captureRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (c *captureRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (c *captureRepo) LLMUsageByPurpose(_ context.Context) ([]store.PurposeUsage, error) {
	return nil, nil
}

func (c *captureRepo) LLMUsageByModel(_ context.Context) ([]store.ModelUsage, error) {
	return nil, nil
}

func (c *captureRepo) Reset(_ context.Context) error {
	return nil
}

func TestLogging_RecordsProviderNameAndModel(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage("ok"),
		Usage:   Usage{InputTokens: 10, OutputTokens: 20},
	})
	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(context.Background(), "theory")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "gemini" {
		t.Errorf("Provider = %q, want the provider name, not the model id", ev.Provider)
	}
	if ev.Model != "mock" {
		t.Errorf("Model = %q, want the served model id", ev.Model)
	}
	if ev.Purpose != "theory" {
		t.Errorf("Purpose = %q, want theory", ev.Purpose)
	}
	if !ev.Success {
		t.Error("Success should be true")
	}
	if ev.InputTokens != 10 || ev.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 10/20", ev.InputTokens, ev.OutputTokens)
	}
	if ev.RunID == "" || ev.RequestID == "" {
		t.Error("run id and request id must be set")
	}
}

func TestLogging_RecordsFailures(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected the provider error to surface")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("Success should be false for a failed request")
	}
	if ev.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", ev.Provider)
	}
	if ev.ErrorMessage == "" {
		t.Error("ErrorMessage should carry the failure")
	}
}

func TestLogging_NilRepoPassThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage("ok")})
	p := WithLogging(mock, "gemini", nil)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != "ok" {
		t.Errorf("content = %q, want ok", resp.Content)
	}
}
