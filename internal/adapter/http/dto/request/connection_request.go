package request

type ConnectionRequest struct {
	InsurerName       string         `json:"insurer_name" binding:"required"`
	InsurerSlug       string         `json:"insurer_slug" binding:"required"`
	AdapterType       string         `json:"adapter_type"`
	SupportedProducts []string       `json:"supported_products" binding:"required,min=1"`
	Credentials       map[string]any `json:"credentials"`
}
