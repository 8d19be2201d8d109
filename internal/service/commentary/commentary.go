// Package commentary asks an OpenAI-compatible chat endpoint for a short
// strategy note on a finished plan. It is strictly best effort: any failure
// (missing key, transport, bad payload) yields the canned fallback sentence
// and never an error, so a planning run cannot be broken by the LLM side.
package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cabuya-planner/internal/constants"
	"cabuya-planner/internal/service/planner"
)

const requestTimeout = 15 * time.Second

type Client struct {
	log    *slog.Logger
	apiKey string
	url    string
	model  string
	http   *http.Client
}

func New(log *slog.Logger, apiKey, url, model string) *Client {
	return &Client{
		log:    log,
		apiKey: apiKey,
		url:    url,
		model:  model,
		http:   &http.Client{Timeout: requestTimeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Annotate returns a one-paragraph commentary for the run summary. The
// returned error is always nil.
func (c *Client) Annotate(ctx context.Context, s planner.Summary) (string, error) {
	const op = "commentary.Annotate"

	if c.apiKey == "" {
		c.log.Debug("commentary disabled, no api key configured")
		return constants.FallbackAnnotation, nil
	}

	prompt := fmt.Sprintf(
		"Eres el jefe de planeación de una planta de cabuya. "+
			"El plan cubre %d días, termina el %s y produce %.2f kg. "+
			"Escribe un comentario breve (máximo 3 frases) sobre la estrategia del plan.",
		s.DaysScheduled, s.FinishedAt, s.TotalKg)

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		c.log.Warn("commentary request marshal failed", slog.String("op", op), slog.Any("err", err))
		return constants.FallbackAnnotation, nil
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.log.Warn("commentary request build failed", slog.String("op", op), slog.Any("err", err))
		return constants.FallbackAnnotation, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("commentary request failed", slog.String("op", op), slog.Any("err", err))
		return constants.FallbackAnnotation, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("commentary endpoint returned non-200",
			slog.String("op", op), slog.Int("status", resp.StatusCode))
		return constants.FallbackAnnotation, nil
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Warn("commentary response decode failed", slog.String("op", op), slog.Any("err", err))
		return constants.FallbackAnnotation, nil
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return constants.FallbackAnnotation, nil
	}

	return parsed.Choices[0].Message.Content, nil
}
