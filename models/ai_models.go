package models

// AIAnalystRequest defines the structure for requests to the AI analyst.
type AIAnalystRequest struct {
	Prompt string `json:"prompt"`
}
