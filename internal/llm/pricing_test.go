package llm

import (
	"math"
	"testing"
)

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 0.15, OutputPerMTok: 0.6}
	got := c.Cost(1_000_000, 500_000)
	want := 0.15 + 0.3
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Cost = %f, want %f", got, want)
	}
}

func TestLookupCost(t *testing.T) {
	if LookupCost("gpt-4o-mini") == nil {
		t.Error("expected pricing for gpt-4o-mini")
	}
	if LookupCost("made-up-model") != nil {
		t.Error("expected nil for an unknown model")
	}
}
