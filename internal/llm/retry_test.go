package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_SingleAttemptPassThrough(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}})
	p := WithRetry(mock, fastRetryConfig(1))

	_, err := p.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected the rate limit error to surface, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("MaxAttempts 1 must mean exactly one call, got %d", mock.CallCount())
	}
}

func TestRetry_RateLimitRecovers(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage("ok")},
	)
	p := WithRetry(mock, fastRetryConfig(3))

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("expected recovery after retry, got %v", err)
	}
	if string(resp.Content) != "ok" {
		t.Errorf("unexpected content %q", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AuthNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrAuth{Err: errors.New("401")}})
	p := WithRetry(mock, fastRetryConfig(5))

	_, err := p.Generate(context.Background(), Request{})
	var auth *ErrAuth
	if !errors.As(err, &auth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("auth failures must not be retried, got %d calls", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, fastRetryConfig(5))

	_, err := p.Generate(context.Background(), Request{})
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("truncation must not be retried, got %d calls", mock.CallCount())
	}
}

func TestRetry_ContextCancelNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: context.Canceled},
		MockResponse{Content: json.RawMessage("never reached")},
	)
	p := WithRetry(mock, fastRetryConfig(5))

	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("cancellation must not be retried, got %d calls", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	badResp := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("schema mismatch")}}
	mock := NewMockProvider(badResp, badResp, badResp)
	p := WithRetry(mock, fastRetryConfig(5))

	_, err := p.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("invalid responses get a single retry, got %d calls", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	unavailable := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	mock := NewMockProvider(unavailable, unavailable, unavailable, unavailable)
	p := WithRetry(mock, fastRetryConfig(3))

	_, err := p.Generate(context.Background(), Request{})
	var un *ErrProviderUnavailable
	if !errors.As(err, &un) {
		t.Fatalf("expected ErrProviderUnavailable after exhaustion, got %v", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_RespectsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 2 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage("ok")},
	)
	p := WithRetry(mock, fastRetryConfig(2))

	start := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if elapsed := time.Since(start); elapsed < 2*time.Millisecond {
		t.Errorf("expected at least the RetryAfter wait, took %s", elapsed)
	}
}

func TestRetry_ModelIDPassThrough(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig(1))
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q, want mock", p.ModelID())
	}
}
