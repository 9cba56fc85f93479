package dto

// GeminiAPIRequest is the request payload for the Gemini API.
type GeminiAPIRequest struct {
	Contents []Content `json:"contents"`
}

// Content represents the content of a request or response.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a part of the content.
type Part struct {
	Text string `json:"text"`
}

// GeminiAPIResponse is the response from the Gemini API.
type GeminiAPIResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is a candidate response from the Gemini API.
type Candidate struct {
	Content Content `json:"content"`
}

// NewsSummaryResult is the structured digest the model returns for one
// symbol's recent news.
type NewsSummaryResult struct {
	Sentiment       string   `json:"sentiment"`
	ConfidenceScore float64  `json:"confidence_score"`
	KeyIssues       []string `json:"key_issues"`
	ShortSummary    string   `json:"short_summary"`
	Reasoning       string   `json:"reasoning"`
}
