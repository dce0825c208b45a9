package request

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestQuoteRequest_Resolvers(t *testing.T) {
	r := QuoteRequest{ConversationID: " wa-123 "}
	if got := r.ResolveConversationID(); got != "wa-123" {
		t.Fatalf("expected wa-123, got %q", got)
	}
	if got := r.ResolveInputData(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestRateTableRequest_Validate(t *testing.T) {
	var ok RateTableRequest
	if err := json.Unmarshal([]byte(`{"rows":[{"price":"120.50"},{"price":99,"coverage_tier":"comprehensive"}]}`), &ok); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.Rows[0].Price.String() != "120.5" {
		t.Fatalf("unexpected price %s", ok.Rows[0].Price)
	}

	var missing RateTableRequest
	_ = json.Unmarshal([]byte(`{"rows":[{"price":1},{"currency":"USD"}]}`), &missing)
	if err := missing.Validate(); !errors.Is(err, ErrMissingRowPrice) {
		t.Fatalf("expected ErrMissingRowPrice, got %v", err)
	}
}
