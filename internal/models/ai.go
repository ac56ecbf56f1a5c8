package models

type SuggestionRequest struct {
	Query string `json:"query"`
}

type SuggestedTask struct {
	Title  string `json:"title"`
	Reason string `json:"reason,omitempty"`
}

type AISuggestion struct {
	Success      bool            `json:"success"`
	Suggestions  []SuggestedTask `json:"suggestions"`
	Message      string          `json:"message,omitempty"`
	QueryContext string          `json:"query_context,omitempty"`
}

// SuggestAndCreateResult is returned by the suggest-and-create endpoint,
// which both generates suggestions and persists them as tasks.
type SuggestAndCreateResult struct {
	Success     bool            `json:"success"`
	Suggestions []SuggestedTask `json:"suggestions"`
	Created     []Task          `json:"created_tasks"`
	Message     string          `json:"message,omitempty"`
}
