package request

// UpdateSettingsRequest represents a partial settings update
type UpdateSettingsRequest struct {
	BusinessName *string `json:"business_name" binding:"omitempty,max=255"`
	GeneratorOn  *bool   `json:"generator_on"`
}
