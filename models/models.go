package models

// WebSource is the web reference carried by a grounding chunk.
type WebSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// GroundingChunk is one grounding entry attached to a generation response.
// Only chunks carrying a web source contribute citations; the rest are
// dropped during extraction.
type GroundingChunk struct {
	Web *WebSource `json:"web,omitempty"`
}

// GenerateResult is the provider-neutral outcome of a single generation
// call: the produced text plus whatever grounding the backend reported.
type GenerateResult struct {
	Text   string           `json:"text"`
	Chunks []GroundingChunk `json:"chunks,omitempty"`
}
