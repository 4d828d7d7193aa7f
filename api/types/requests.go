package types

// CreateRecipeRequest is the body for recipe creation and stateless
// extraction requests
type CreateRecipeRequest struct {
	URL string `json:"url" binding:"required"`
}
