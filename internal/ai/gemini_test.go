package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lifequest/internal/storage"
)

var testStats = []storage.Stat{
	{ID: "stat_skill", Name: "Skill Mastery", Category: "SKILL", Level: 3, CurrentXP: 40, MaxXP: 300},
	{ID: "stat_gold", Name: "Gold & Treasury", Category: "GOLD", Level: 1, MaxXP: 100},
}

func suggestionBody(payload string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": payload}}}},
		},
	}
	data, _ := json.Marshal(resp)
	return string(data)
}

func TestSuggestQuest(t *testing.T) {
	var gotPath, gotKey, gotRequestID string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-Goog-Api-Key")
		gotRequestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(suggestionBody(`{
			"name": "Evening run",
			"objective": "Run 5k before dinner",
			"type": "daily",
			"tier": 2,
			"xpReward": 25,
			"coinReward": 8,
			"stat": "VITALITY"
		}`)))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL})
	s, err := c.SuggestQuest(context.Background(), testStats)
	if err != nil {
		t.Fatalf("SuggestQuest: %v", err)
	}

	if s.Name != "Evening run" || s.Stat != "VITALITY" || s.XPReward != 25 || s.Tier != 2 {
		t.Fatalf("suggestion = %+v", s)
	}
	if s.RequestID == "" || s.RequestID != gotRequestID {
		t.Fatalf("request id not propagated: %q vs header %q", s.RequestID, gotRequestID)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key header = %q", gotKey)
	}
	if !strings.Contains(gotPath, "gemini-2.5-flash:generateContent") {
		t.Fatalf("path = %q", gotPath)
	}
	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("request contents = %+v", gotBody.Contents)
	}
	prompt := gotBody.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Skill Mastery (level 3)") {
		t.Fatalf("prompt missing stat summary: %q", prompt)
	}
	if gotBody.GenerationConfig.ResponseMIMEType != "application/json" {
		t.Fatalf("response mime type = %q", gotBody.GenerationConfig.ResponseMIMEType)
	}
}

func TestSuggestQuestMissingKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("request sent despite missing key")
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	_, err := c.SuggestQuest(context.Background(), testStats)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestSuggestQuestServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.SuggestQuest(context.Background(), testStats)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
}

func TestSuggestQuestMalformedPayload(t *testing.T) {
	cases := map[string]string{
		"no candidates": `{}`,
		"bad json text": suggestionBody("not json at all"),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
			_, err := c.SuggestQuest(context.Background(), testStats)
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("err = %v, want ErrUnavailable", err)
			}
		})
	}
}
