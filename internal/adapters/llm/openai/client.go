package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"dental-clinical-records/internal/platform/httpclient"

	"github.com/rs/zerolog"
	goopenai "github.com/sashabaranov/go-openai"
)

const DefaultModel = "gpt-4o-mini"

var (
	ErrNotConfigured = errors.New("llm api key not configured")
	ErrEmptyResponse = errors.New("llm returned no choices")
)

// Config del cliente. BaseURL permite apuntar a cualquier endpoint compatible
// con la API de OpenAI, p.ej. el de Gemini.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration

	// Opcional, para tests.
	Transport http.RoundTripper
}

// Client implementa followup.TextGenerator sobre chat completions.
// Es stateless: una instancia se comparte entre todos los requests.
type Client struct {
	client      *goopenai.Client
	model       string
	temperature float32
}

func NewClient(cfg Config, log zerolog.Logger) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	oc := goopenai.DefaultConfig(apiKey)
	if base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); base != "" {
		oc.BaseURL = base
	}
	oc.HTTPClient = httpclient.NewWithTransport(cfg.Timeout, &httpclient.LoggingTransport{
		Next: cfg.Transport,
		Log:  log.With().Str("component", "llm").Logger(),
	})

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client:      goopenai.NewClientWithConfig(oc),
		model:       model,
		temperature: cfg.Temperature,
	}, nil
}

// Generate manda el prompt como único mensaje de usuario y devuelve el
// contenido de la primera opción sin tocar.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: c.temperature,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
