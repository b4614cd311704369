package http

// APIResponse is the JSON envelope of every API endpoint.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError describes one rejected field.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string                 `json:"field,omitempty" example:"baseline"`
	Message string                 `json:"message,omitempty" example:"baseline is required"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
