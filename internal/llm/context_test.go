package llm

import (
	"context"
	"testing"
)

func TestPurposeRoundTrip(t *testing.T) {
	ctx := WithPurpose(context.Background(), "practice-eval")
	if got := PurposeFrom(ctx); got != "practice-eval" {
		t.Errorf("PurposeFrom = %q, want practice-eval", got)
	}
}

func TestPurposeFrom_Missing(t *testing.T) {
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("PurposeFrom on bare context = %q, want unknown", got)
	}
}
