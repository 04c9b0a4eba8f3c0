// Package ai talks to the Gemini generateContent endpoint to suggest a
// quest. Failures are deliberately indistinct: every transport, auth or
// parse problem maps to ErrUnavailable ("try again"), and the caller's state
// is never touched until the suggestion goes through the ordinary quest
// creation path.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"lifequest/internal/storage"
)

// ErrUnavailable signals the suggestion service cannot answer right now;
// the operation may be retried freely.
var ErrUnavailable = errors.New("suggestion service unavailable")

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.5-flash"
)

// Config configures the Gemini client. BaseURL and HTTPClient are
// injectable for tests.
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type Client struct {
	cfg Config
}

func NewClient(cfg Config) *Client {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Client{cfg: cfg}
}

// Suggestion is the model's proposed quest payload. It is raw input: the
// caller validates it through the normal quest creation path.
type Suggestion struct {
	Name       string `json:"name"`
	Objective  string `json:"objective"`
	Type       string `json:"type"`
	Tier       int    `json:"tier"`
	XPReward   int    `json:"xpReward"`
	CoinReward int    `json:"coinReward"`
	Stat       string `json:"stat"`

	// RequestID identifies the request that produced this suggestion, so a
	// caller juggling in-flight requests can discard stale results.
	RequestID string `json:"-"`
}

// SuggestQuest asks the model for one real-life quest grounded in the
// current stat sheet. A missing API key short-circuits before any request.
func (c *Client) SuggestQuest(ctx context.Context, stats []storage.Stat) (*Suggestion, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, fmt.Errorf("missing API key: %w", ErrUnavailable)
	}

	requestID := uuid.NewString()
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(stats)}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   suggestionSchema(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.cfg.APIKey)
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		c.cfg.Logger.Debug("suggestion request failed", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("call model: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.cfg.Logger.Debug("suggestion request rejected", "request_id", requestID, "status", resp.StatusCode)
		return nil, fmt.Errorf("model returned status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", ErrUnavailable)
	}

	var gr generateResponse
	if err := json.Unmarshal(data, &gr); err != nil {
		return nil, fmt.Errorf("decode response: %w", ErrUnavailable)
	}
	text := gr.firstText()
	if text == "" {
		return nil, fmt.Errorf("empty response: %w", ErrUnavailable)
	}

	var s Suggestion
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		c.cfg.Logger.Debug("suggestion payload malformed", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("decode suggestion: %w", ErrUnavailable)
	}
	s.RequestID = requestID
	return &s, nil
}

func buildPrompt(stats []storage.Stat) string {
	var sb strings.Builder
	sb.WriteString("You are the game master of LifeQuest, an app that tracks real-life habits as RPG quests.\n")
	sb.WriteString("Current stats: ")
	for i, s := range stats {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s (level %d)", s.Name, s.Level)
	}
	sb.WriteString(".\n")
	sb.WriteString("Suggest one creative, concrete real-life quest that improves one of these stats. ")
	sb.WriteString("Use stat values SKILL, GOLD, FOCUS, CHARISMA, VITALITY or MORALE, ")
	sb.WriteString("type daily, weekly or monthly, tier 1-3, and modest xpReward/coinReward integers. ")
	sb.WriteString("Return JSON only.")
	return sb.String()
}

func suggestionSchema() map[string]any {
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"name":       map[string]any{"type": "STRING"},
			"objective":  map[string]any{"type": "STRING"},
			"type":       map[string]any{"type": "STRING", "enum": []string{"daily", "weekly", "monthly"}},
			"tier":       map[string]any{"type": "INTEGER"},
			"xpReward":   map[string]any{"type": "INTEGER"},
			"coinReward": map[string]any{"type": "INTEGER"},
			"stat": map[string]any{
				"type": "STRING",
				"enum": []string{"SKILL", "GOLD", "FOCUS", "CHARISMA", "VITALITY", "MORALE"},
			},
		},
		"required": []string{"name", "type", "tier", "xpReward", "coinReward", "stat"},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r generateResponse) firstText() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Candidates[0].Content.Parts[0].Text)
}
