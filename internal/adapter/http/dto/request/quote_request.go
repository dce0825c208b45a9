package request

import "strings"

// QuoteRequest is submitted by the broker dashboard and by the conversational
// agent once it has collected the client's data.
type QuoteRequest struct {
	ProductType    string         `json:"product_type" binding:"required"`
	CoverageTier   string         `json:"coverage_tier"`
	InputData      map[string]any `json:"input_data"`
	ConversationID string         `json:"conversation_id"`
}

func (r QuoteRequest) ResolveInputData() map[string]any {
	if r.InputData == nil {
		return map[string]any{}
	}
	return r.InputData
}

func (r QuoteRequest) ResolveConversationID() string {
	return strings.TrimSpace(r.ConversationID)
}
