package providers

// CompletionResponse is what a provider client hands back for one analysis
// call. Response carries the raw model text, which may still contain
// redaction tokens.
type CompletionResponse struct {
	ID       string `json:"id"`
	Provider string `json:"provider"`
	// Model is the model that served the call. Clients copy it from the
	// upstream reply when the API reports one.
	Model    string `json:"model"`
	Response string `json:"response"`
	Usage    Usage  `json:"usage"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Total falls back to the sum of both sides for APIs that omit it.
func (u Usage) Total() int {
	if u.TotalTokens > 0 {
		return u.TotalTokens
	}
	return u.PromptTokens + u.CompletionTokens
}
