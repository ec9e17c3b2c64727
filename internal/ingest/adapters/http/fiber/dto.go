package fiber

// ImportResponse summarizes one dataset import
// @Description Import summary DTO
type ImportResponse struct {
	BatchID  string `json:"batch_id" example:"4f6c2b0e-2a51-4a8f-9a53-0b6f3f0f7a11"`
	Imported int    `json:"imported" example:"1200"`
	Skipped  int    `json:"skipped" example:"3"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_dataset"`
	Message string `json:"message" example:"dataset has no rows"`
}
