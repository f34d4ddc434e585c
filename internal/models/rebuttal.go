package models

// MaxResponses is the number of rebuttal lines returned per request
const MaxResponses = 3

// GenerationRequest is a validated rebuttal request
type GenerationRequest struct {
	Input     string `json:"input"`
	Intensity int    `json:"intensity"`
}

// GenerationResult holds up to MaxResponses rebuttal lines
type GenerationResult struct {
	Responses []string `json:"responses"`
}
