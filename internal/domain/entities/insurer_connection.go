package entities

import (
	"strings"
	"time"
)

const (
	AdapterTypeLiveAPI         = "live_api"
	AdapterTypeManualRateTable = "manual_rate_table"
)

// Insurer identifies the carrier behind a connection and how to talk to it.
type Insurer struct {
	Name              string        `json:"name"`
	Slug              string        `json:"slug"`
	AdapterType       string        `json:"adapter_type"`
	SupportedProducts []ProductType `json:"supported_products"`
}

func (i Insurer) Supports(p ProductType) bool {
	for _, sp := range i.SupportedProducts {
		if sp == p {
			return true
		}
	}
	return false
}

// Credentials is the generic credential bag stored with a connection.
// Each adapter decodes it into its own typed struct.
type Credentials map[string]any

func (c Credentials) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// InsurerConnection is a broker's configured link to one insurer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (broker_id-index): broker_id
//
// Lifecycle: created when an operator configures an integration and
// deactivated (never deleted) on disconnect. The aggregation engine only reads it.
type InsurerConnection struct {
	ID          string      `json:"id"`
	BrokerID    string      `json:"broker_id"`
	Insurer     Insurer     `json:"insurer"`
	Credentials Credentials `json:"-"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
