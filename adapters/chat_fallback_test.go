package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	router "github.com/FrenchMajesty/agent-router"
	"github.com/FrenchMajesty/agent-router/internal/retry"
)

func chatResponseBody(content string) string {
	return fmt.Sprintf(`{"choices":[{"message":{"role":"assistant","content":%q}}]}`, content)
}

func newTestFallback(t *testing.T, serverURL string) *ChatFallback {
	t.Helper()
	fallback, err := NewChatFallback("test-key", "", serverURL)
	if err != nil {
		t.Fatalf("NewChatFallback() error = %v", err)
	}
	// Keep test retries fast.
	fallback.retryCfg = retry.Config{
		MaxRetries:      2,
		BaseDelay:       time.Millisecond,
		MaxDelay:        5 * time.Millisecond,
		BackoffMultiple: 2.0,
	}
	return fallback
}

func TestClassifyTaskSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %s, want /chat/completions", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q, want bearer test key", got)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}

		fmt.Fprint(w, chatResponseBody("navigation"))
	}))
	defer server.Close()

	fallback := newTestFallback(t, server.URL)
	kind, err := fallback.ClassifyTask(context.Background(), "take me somewhere")
	if err != nil {
		t.Fatalf("ClassifyTask() error = %v", err)
	}
	if kind != router.AgentNavigation {
		t.Errorf("ClassifyTask() = %s, want %s", kind, router.AgentNavigation)
	}
}

func TestClassifyTaskNormalizesLabel(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    router.AgentKind
		wantErr bool
	}{
		{name: "uppercase", content: "SHOPPING", want: router.AgentShopping},
		{name: "surrounding whitespace", content: "  analysis\n", want: router.AgentAnalysis},
		{name: "trailing period", content: "research.", want: router.AgentResearch},
		{name: "quoted", content: `"automation"`, want: router.AgentAutomation},
		{name: "unknown label", content: "sorcery", wantErr: true},
		{name: "chatty answer", content: "I think this is navigation", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, chatResponseBody(tt.content))
			}))
			defer server.Close()

			kind, err := newTestFallback(t, server.URL).ClassifyTask(context.Background(), "task")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ClassifyTask() error = nil, want error for %q", tt.content)
				}
				return
			}
			if err != nil {
				t.Fatalf("ClassifyTask() error = %v", err)
			}
			if kind != tt.want {
				t.Errorf("ClassifyTask() = %s, want %s", kind, tt.want)
			}
		})
	}
}

func TestClassifyTaskRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, chatResponseBody("communication"))
	}))
	defer server.Close()

	kind, err := newTestFallback(t, server.URL).ClassifyTask(context.Background(), "task")
	if err != nil {
		t.Fatalf("ClassifyTask() error = %v after retries", err)
	}
	if kind != router.AgentCommunication {
		t.Errorf("ClassifyTask() = %s, want %s", kind, router.AgentCommunication)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestClassifyTaskClientErrorIsFatal(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"bad request"}`)
	}))
	defer server.Close()

	_, err := newTestFallback(t, server.URL).ClassifyTask(context.Background(), "task")
	if err == nil || !strings.Contains(err.Error(), "status 400") {
		t.Errorf("ClassifyTask() error = %v, want status 400 error", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (4xx must not retry)", attempts)
	}
}

func TestClassifyTaskEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	_, err := newTestFallback(t, server.URL).ClassifyTask(context.Background(), "task")
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Errorf("ClassifyTask() error = %v, want no-choices error", err)
	}
}

func TestNewChatFallbackRequiresKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	if _, err := NewChatFallback("", "", ""); err == nil {
		t.Error("NewChatFallback() error = nil without a key, want error")
	}

	t.Setenv("GROQ_API_KEY", "env-key")
	fallback, err := NewChatFallback("", "", "")
	if err != nil {
		t.Fatalf("NewChatFallback() error = %v with env key", err)
	}
	if fallback.apiKey != "env-key" {
		t.Errorf("apiKey = %q, want env-key", fallback.apiKey)
	}
}
