package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// OpenAIGenerator builds flashcards by calling an OpenAI-compatible chat
// completions endpoint (OpenRouter, Ollama, LM Studio, vLLM, etc.).
type OpenAIGenerator struct {
	url    string // e.g. "https://openrouter.ai/api"
	model  string
	apiKey string // optional bearer token
	client *http.Client
}

// Compile-time check: *OpenAIGenerator satisfies the Generator interface.
var _ Generator = (*OpenAIGenerator)(nil)

// GenerateError is returned when generation fails so the caller can tell
// "model answered with garbage" apart from "model was unreachable".
type GenerateError struct {
	Reason  string
	Wrapped error
}

func (e *GenerateError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerateError) Unwrap() error {
	return e.Wrapped
}

func NewOpenAIGenerator(url, model, apiKey string) *OpenAIGenerator {
	return &OpenAIGenerator{
		url:    strings.TrimRight(url, "/"),
		model:  model,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

const maxRetries = 2

const systemPrompt = "You are a helpful assistant. When asked to generate JSON, output only raw JSON. " +
	"Do not use markdown, code blocks, or any formatting. Respond with nothing except the JSON array."

// Generate asks the model for flashcards and keeps the first maxCards
// well-formed ones. It retries once when the reply cannot be parsed.
func (g *OpenAIGenerator) Generate(ctx context.Context, text string, maxCards int) ([]Card, error) {
	prompt := fmt.Sprintf(
		"Generate as many flashcards as needed (with 'front' and 'back' fields) in the target language based on the following text: %s",
		text,
	)

	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		raw, err := g.callLLM(ctx, prompt)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = err
			continue
		}

		jsonStr := extractJSONArray(raw)
		if jsonStr == "" {
			lastErr = &GenerateError{Reason: "no JSON array found in LLM response"}
			continue
		}

		var parsed []Card
		if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
			lastErr = &GenerateError{Reason: "invalid JSON from LLM", Wrapped: err}
			continue
		}

		return limitCards(parsed, maxCards), nil
	}

	return nil, &GenerateError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// limitCards drops entries missing a side and truncates to max.
func limitCards(cards []Card, max int) []Card {
	out := make([]Card, 0, len(cards))
	for _, c := range cards {
		c.Front = strings.TrimSpace(c.Front)
		c.Back = strings.TrimSpace(c.Back)
		if c.Front == "" || c.Back == "" {
			continue
		}
		out = append(out, c)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (g *OpenAIGenerator) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: g.model,
		Messages: []llmMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.2,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := strings.TrimSpace(llmResp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSONArray finds the outermost JSON array in a string, skipping any
// prose or markdown fences around it. Brackets inside quoted strings are
// ignored.
func extractJSONArray(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			if start != -1 {
				inString = !inString
			}
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '[':
			if depth == 0 {
				start = i
			}
			depth++
		case ']':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
