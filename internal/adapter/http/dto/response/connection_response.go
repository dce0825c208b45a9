package response

import (
	"time"

	"broker_quotes/internal/domain/entities"
)

// ConnectionResponse never echoes credentials.
type ConnectionResponse struct {
	ID                string    `json:"id"`
	BrokerID          string    `json:"broker_id"`
	InsurerName       string    `json:"insurer_name"`
	InsurerSlug       string    `json:"insurer_slug"`
	AdapterType       string    `json:"adapter_type"`
	SupportedProducts []string  `json:"supported_products"`
	HasCredentials    bool      `json:"has_credentials"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromConnection(c entities.InsurerConnection) ConnectionResponse {
	products := make([]string, 0, len(c.Insurer.SupportedProducts))
	for _, p := range c.Insurer.SupportedProducts {
		products = append(products, string(p))
	}
	return ConnectionResponse{
		ID:                c.ID,
		BrokerID:          c.BrokerID,
		InsurerName:       c.Insurer.Name,
		InsurerSlug:       c.Insurer.Slug,
		AdapterType:       c.Insurer.AdapterType,
		SupportedProducts: products,
		HasCredentials:    len(c.Credentials) > 0,
		Active:            c.Active,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func FromConnections(cs []entities.InsurerConnection) []ConnectionResponse {
	out := make([]ConnectionResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromConnection(c))
	}
	return out
}
