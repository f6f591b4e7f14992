package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/thien1805/scrum-to-your-doctor/config"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const systemPrompt = "You are a triage assistant for a medical clinic. " +
	"Given a patient's symptom description and a catalog of specialties, " +
	"reply with ONLY a JSON object of the form {\"specialty_ids\": [..]} " +
	"listing the ids of the specialties most relevant to the symptoms, " +
	"most relevant first. Use only ids from the catalog."

// jsonBlockPattern salvages the first JSON object or array from a reply
// that wraps it in prose or a markdown fence.
var jsonBlockPattern = regexp.MustCompile(`\{[\s\S]*\}|\[[\s\S]*\]`)

// OpenRouterClient calls an OpenAI-compatible chat completion endpoint to
// classify symptom text against the specialty catalog.
type OpenRouterClient struct {
	cfg        config.AIConfig
	log        *logrus.Logger
	httpClient *http.Client
}

func NewOpenRouterClient(cfg config.AIConfig, log *logrus.Logger) *OpenRouterClient {
	return &OpenRouterClient{
		cfg: cfg,
		log: log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type suggestionPayload struct {
	SpecialtyIDs []int `json:"specialty_ids"`
}

func (c *OpenRouterClient) SuggestSpecialtyIDs(ctx context.Context, symptoms string, specialties []entity.Specialty) ([]int, error) {
	catalog := make([]string, 0, len(specialties))
	for _, s := range specialties {
		catalog = append(catalog, fmt.Sprintf("%d: %s", s.ID, s.Name))
	}

	userPrompt := fmt.Sprintf("Specialty catalog:\n%s\n\nSymptoms:\n%s", strings.Join(catalog, "\n"), symptoms)

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chat completion returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return nil, fmt.Errorf("failed to decode chat completion response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return parseSuggestion(chatResp.Choices[0].Message.Content)
}

// parseSuggestion extracts specialty ids from the model's reply. Accepts
// either the requested object form or a bare array of ids.
func parseSuggestion(content string) ([]int, error) {
	block := jsonBlockPattern.FindString(content)
	if block == "" {
		return nil, fmt.Errorf("no JSON found in model reply")
	}

	if strings.HasPrefix(block, "{") {
		var payload suggestionPayload
		if err := json.Unmarshal([]byte(block), &payload); err != nil {
			return nil, fmt.Errorf("failed to parse model reply: %w", err)
		}
		return payload.SpecialtyIDs, nil
	}

	var ids []int
	if err := json.Unmarshal([]byte(block), &ids); err != nil {
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}
	return ids, nil
}
