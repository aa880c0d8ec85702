package types

const (
	ErrImageAndPromptRequired = "Image and prompt are required"
	ErrInternalServer         = "Internal Server Error"
)

type GenerateVideoResponse struct {
	VideoUrl string `json:"videoUrl"`
}

// ErrorResponse is the only error body the api emits: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status    int   `json:"status"`
	TimeStamp int64 `json:"timestamp"`
}
