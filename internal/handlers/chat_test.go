package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Tasheela99/chat-bot/internal/config"
	"github.com/Tasheela99/chat-bot/internal/i18n"
	"github.com/Tasheela99/chat-bot/internal/middleware"
	"github.com/Tasheela99/chat-bot/internal/models"
	"github.com/Tasheela99/chat-bot/internal/pipeline"
	"github.com/Tasheela99/chat-bot/internal/services/cache"
	"github.com/Tasheela99/chat-bot/internal/services/shortcut"
	"github.com/Tasheela99/chat-bot/internal/topics"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type stubLLM struct {
	response string
}

func (s *stubLLM) Complete(ctx context.Context, systemPrompt, contextInfo string, history []models.Message, question string) (string, error) {
	return s.response, nil
}

func newTestRouter(t *testing.T, cfg *config.Config, llm *stubLLM) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	localizer, err := i18n.NewLocalizer("en", []string{"en", "si", "ta"})
	if err != nil {
		t.Fatalf("failed to build localizer: %v", err)
	}

	cacheService, err := cache.NewService(&cfg.Cache, log)
	if err != nil {
		t.Fatalf("failed to build cache: %v", err)
	}

	registry := topics.NewRegistry()
	metrics := middleware.NewMetrics()
	assembler := pipeline.NewAssembler(registry, shortcut.New(localizer), llm, cacheService, localizer, metrics, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	handler := NewChatHandler(cfg, assembler, registry, localizer, rateLimiter, metrics, log)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func defaultTestConfig() *config.Config {
	return &config.Config{}
}

func doChat(t *testing.T, router *mux.Router, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:12345"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeChatResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ChatResponse {
	t.Helper()
	var resp models.ChatResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestChatInvalidBody(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{})

	rec := doChat(t, router, "/chat", "{not json")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed JSON, got %d", rec.Code)
	}
}

func TestChatMissingFields(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{})

	for _, body := range []string{
		`{"context":"","question":"How do I apply?"}`,
		`{"context":"presidents_fund","question":"  "}`,
		`{}`,
	} {
		rec := doChat(t, router, "/chat", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for body %s, got %d", body, rec.Code)
		}
		resp := decodeChatResponse(t, rec)
		if resp.Success {
			t.Errorf("validation failure must not be marked successful: %s", body)
		}
	}
}

func TestChatFAQAnswer(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{response: "generated"})

	rec := doChat(t, router, "/chat", `{"context":"presidents_fund","question":"Do I need to visit Colombo office?","language":"en"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeChatResponse(t, rec)
	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if !strings.Contains(resp.Answer, "Divisional Secretariat") {
		t.Errorf("unexpected answer %q", resp.Answer)
	}
	if resp.ContextUsed != "presidents_fund" {
		t.Errorf("response must echo the topic, got %q", resp.ContextUsed)
	}
}

func TestChatRejectionsReturn400(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{})

	rec := doChat(t, router, "/chat", `{"context":"presidents_fund","question":"you bastard","language":"en"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("safety rejection should map to 400, got %d", rec.Code)
	}
	if resp := decodeChatResponse(t, rec); resp.Error != models.ErrInappropriateLanguage {
		t.Errorf("unexpected error code %q", resp.Error)
	}

	rec = doChat(t, router, "/chat", `{"context":"presidents_fund","question":"Hello","language":"si"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("language mismatch should map to 400, got %d", rec.Code)
	}
}

func TestChatFAQMissStays200(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{})

	rec := doChat(t, router, "/chat", `{"context":"presidents_fund","question":"Where does the queen live?","language":"en"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("FAQ miss keeps 200 with success=false, got %d", rec.Code)
	}
	resp := decodeChatResponse(t, rec)
	if resp.Success || resp.Error != models.ErrQuestionNotInFAQ {
		t.Errorf("unexpected miss response: success=%v error=%q", resp.Success, resp.Error)
	}
}

func TestChatHTMLFormat(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{response: "Apply at the **Divisional Secretariat**."})

	rec := doChat(t, router, "/chat?format=html", `{"context":"presidents_office","question":"Where do I apply?","language":"en"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeChatResponse(t, rec)
	if !strings.Contains(resp.Answer, "<strong>") {
		t.Errorf("format=html should render markdown, got %q", resp.Answer)
	}
}

func TestChatRateLimited(t *testing.T) {
	cfg := defaultTestConfig()
	cfg.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 1, Burst: 1}
	router := newTestRouter(t, cfg, &stubLLM{response: "generated"})

	body := `{"context":"presidents_office","question":"What programs exist?","language":"en"}`
	if rec := doChat(t, router, "/chat", body); rec.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", rec.Code)
	}

	rec := doChat(t, router, "/chat", body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request should be rate limited, got %d", rec.Code)
	}
	resp := decodeChatResponse(t, rec)
	if resp.Success {
		t.Error("rate-limited responses are failures")
	}
	if resp.Answer == "" {
		t.Error("rate-limited responses carry a localized message")
	}
}

func TestRootBanner(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode banner: %v", err)
	}
	if body["status"] != "active" {
		t.Errorf("unexpected status %v", body["status"])
	}
	if _, ok := body["available_contexts"]; !ok {
		t.Error("banner should list the available contexts")
	}
}

func TestContextsListing(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/contexts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Contexts []string `json:"contexts"`
		Total    int      `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if body.Total != 2 || len(body.Contexts) != 2 {
		t.Errorf("expected two registered contexts, got %+v", body)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, defaultTestConfig(), &stubLLM{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("unexpected health body %s", rec.Body.String())
	}
}
