package provider

import (
	"context"
	"errors"
	"time"

	"trenddesk/models"
	gemini_provider "trenddesk/provider/gemini"
)

// Client represents different generation backends
type Client string

const (
	Gemini Client = "gemini"
	OpenAI Client = "openai"
)

// Provider is the interface that all generation backends must satisfy
type Provider interface {
	Generate(ctx context.Context, prompt string, grounded bool) (models.GenerateResult, error)
}

// Options carries the backend configuration resolved at startup.
type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// NewProvider creates a generation client for the configured backend
func NewProvider(client Client, opts Options) (Provider, error) {
	switch client {
	case Gemini:
		if opts.APIKey == "" {
			return nil, errors.New("gemini API key is required")
		}
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		return gemini_provider.NewGeminiClient(opts.APIKey, opts.Model, opts.BaseURL, timeout), nil
	case OpenAI:
		return nil, errors.New("openai client not implemented yet")
	default:
		return nil, errors.New("unsupported generation provider")
	}
}
