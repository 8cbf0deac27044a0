package gemini_provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"trenddesk/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// client implements the provider interface against the Gemini
// generateContent REST API.
type client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type googleSearch struct{}

// tool enables a built-in capability on the request; search grounding is
// the only one this client uses.
type tool struct {
	GoogleSearch *googleSearch `json:"google_search,omitempty"`
}

// request represents a generateContent request body
type request struct {
	Contents []content `json:"contents"`
	Tools    []tool    `json:"tools,omitempty"`
}

type webSource struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type groundingChunk struct {
	Web *webSource `json:"web,omitempty"`
}

type groundingMetadata struct {
	GroundingChunks []groundingChunk `json:"groundingChunks"`
}

type candidate struct {
	Content           content            `json:"content"`
	GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
}

// response represents a generateContent response body
type response struct {
	Candidates []candidate `json:"candidates"`
}

// NewGeminiClient creates a new Gemini client. An empty baseURL selects
// the public endpoint.
func NewGeminiClient(apiKey, model, baseURL string, timeout time.Duration) *client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate sends the prompt to the generateContent endpoint, with Google
// Search grounding when requested, and returns the first candidate's text
// and grounding chunks. A response without candidates or grounding
// degrades to an empty result rather than an error; only transport,
// status and decode failures are reported.
func (c *client) Generate(ctx context.Context, prompt string, grounded bool) (models.GenerateResult, error) {
	requestBody := request{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if grounded {
		requestBody.Tools = []tool{{GoogleSearch: &googleSearch{}}}
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return models.GenerateResult{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return models.GenerateResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.GenerateResult{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.GenerateResult{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return models.GenerateResult{}, fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var geminiResp response
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return models.GenerateResult{}, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(geminiResp.Candidates) == 0 {
		return models.GenerateResult{}, nil
	}

	first := geminiResp.Candidates[0]
	var text strings.Builder
	for _, p := range first.Content.Parts {
		text.WriteString(p.Text)
	}

	result := models.GenerateResult{Text: text.String()}
	if first.GroundingMetadata != nil {
		result.Chunks = make([]models.GroundingChunk, 0, len(first.GroundingMetadata.GroundingChunks))
		for _, chunk := range first.GroundingMetadata.GroundingChunks {
			converted := models.GroundingChunk{}
			if chunk.Web != nil {
				converted.Web = &models.WebSource{URI: chunk.Web.URI, Title: chunk.Web.Title}
			}
			result.Chunks = append(result.Chunks, converted)
		}
	}
	return result, nil
}
