package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/thien1805/scrum-to-your-doctor/config"
	"github.com/thien1805/scrum-to-your-doctor/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

func testCatalog() []entity.Specialty {
	return []entity.Specialty{
		{ID: 1, Name: "Cardiology"},
		{ID: 2, Name: "Dermatology"},
		{ID: 3, Name: "Neurology"},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*OpenRouterClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewOpenRouterClient(config.AIConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, logrus.New())
	return client, server
}

func completionReply(content string) string {
	reply := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	b, _ := json.Marshal(reply)
	return string(b)
}

func TestSuggestSpecialtyIDs(t *testing.T) {
	var gotPath, gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionReply(`{"specialty_ids": [3, 1]}`)))
	})

	ids, err := client.SuggestSpecialtyIDs(context.Background(), "severe headaches and dizziness", testCatalog())
	if err != nil {
		t.Fatalf("SuggestSpecialtyIDs() error = %v", err)
	}
	if !reflect.DeepEqual(ids, []int{3, 1}) {
		t.Errorf("ids = %v, want [3 1]", ids)
	}
	if gotPath != "/chat/completions" {
		t.Errorf("request path = %q, want /chat/completions", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
}

func TestSuggestSpecialtyIDsSalvagesFencedJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		content := "Here you go:\n```json\n{\"specialty_ids\": [2]}\n```"
		w.Write([]byte(completionReply(content)))
	})

	ids, err := client.SuggestSpecialtyIDs(context.Background(), "itchy rash", testCatalog())
	if err != nil {
		t.Fatalf("SuggestSpecialtyIDs() error = %v", err)
	}
	if !reflect.DeepEqual(ids, []int{2}) {
		t.Errorf("ids = %v, want [2]", ids)
	}
}

func TestSuggestSpecialtyIDsUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := client.SuggestSpecialtyIDs(context.Background(), "cough", testCatalog()); err == nil {
		t.Fatal("expected error for non-200 upstream response")
	}
}

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []int
		wantErr bool
	}{
		{name: "object form", content: `{"specialty_ids": [1, 2]}`, want: []int{1, 2}},
		{name: "bare array", content: `[4, 5]`, want: []int{4, 5}},
		{name: "wrapped in prose", content: `Sure! {"specialty_ids": [7]} Hope that helps.`, want: []int{7}},
		{name: "no json", content: "I cannot help with that.", wantErr: true},
		{name: "malformed json", content: `{"specialty_ids": [1,}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestion(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSuggestion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseSuggestion() = %v, want %v", got, tt.want)
			}
		})
	}
}
