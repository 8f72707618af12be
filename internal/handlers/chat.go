package handlers

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/Tasheela99/chat-bot/internal/config"
	"github.com/Tasheela99/chat-bot/internal/i18n"
	"github.com/Tasheela99/chat-bot/internal/middleware"
	"github.com/Tasheela99/chat-bot/internal/models"
	"github.com/Tasheela99/chat-bot/internal/pipeline"
	"github.com/Tasheela99/chat-bot/internal/topics"
	"github.com/Tasheela99/chat-bot/pkg/markdown"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// ChatHandler serves the chat API endpoints
type ChatHandler struct {
	config      *config.Config
	assembler   *pipeline.Assembler
	registry    *topics.Registry
	localizer   *i18n.Localizer
	rateLimiter middleware.RateLimiter
	metrics     *middleware.Metrics
	logger      *logrus.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	cfg *config.Config,
	assembler *pipeline.Assembler,
	registry *topics.Registry,
	localizer *i18n.Localizer,
	rateLimiter middleware.RateLimiter,
	metrics *middleware.Metrics,
	logger *logrus.Logger,
) *ChatHandler {
	return &ChatHandler{
		config:      cfg,
		assembler:   assembler,
		registry:    registry,
		localizer:   localizer,
		rateLimiter: rateLimiter,
		metrics:     metrics,
		logger:      logger,
	}
}

// RegisterRoutes attaches all API routes to the router
func (h *ChatHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/chat", middleware.Instrument("/chat", h.Chat)).Methods(http.MethodPost)
	r.HandleFunc("/contexts", h.Contexts).Methods(http.MethodGet)
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	if h.config.Monitoring.Metrics.Enabled {
		r.Handle(h.config.Monitoring.Metrics.Path, middleware.Handler()).Methods(http.MethodGet)
	}
}

// Root returns the service banner with the available contexts
func (h *ChatHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":            "Government Chatbot API",
		"status":             "active",
		"available_contexts": h.registry.Topics(),
	})
}

// Contexts lists the known topic identifiers
func (h *ChatHandler) Contexts(w http.ResponseWriter, r *http.Request) {
	names := h.registry.Topics()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contexts": names,
		"total":    len(names),
	})
}

// Health is the liveness endpoint
func (h *ChatHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "government-chatbot-api",
	})
}

// Chat runs one question through the answer-resolution pipeline
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	if strings.TrimSpace(req.Context) == "" || strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, models.ChatResponse{
			ContextUsed: req.Context,
			Success:     false,
			Error:       "context and question are required",
		})
		return
	}

	lang := req.Language
	if lang == "" {
		lang = models.LangEnglish
	}

	if !h.rateLimiter.Allow(clientIP(r)) {
		h.metrics.RecordRateLimited()
		writeJSON(w, http.StatusTooManyRequests, models.ChatResponse{
			Answer:      h.localizer.Get(lang, i18n.MsgRateLimitExceeded, nil),
			ContextUsed: req.Context,
			Success:     false,
			Error:       "Rate limit exceeded.",
		})
		return
	}

	resp, stage := h.assembler.HandleChat(r.Context(), &req)
	h.metrics.RecordChatResolution(string(stage), resp.Success)

	h.logger.WithFields(logrus.Fields{
		"topic":    req.Context,
		"language": lang,
		"stage":    stage,
		"success":  resp.Success,
	}).Info("Chat request resolved")

	if resp.Success && r.URL.Query().Get("format") == "html" {
		resp.Answer = markdown.ToHTML(resp.Answer)
	}

	writeJSON(w, statusFor(resp), resp)
}

// statusFor maps input-rejection error codes to 400. Everything else,
// including FAQ misses and upstream failures, stays 200 with success=false
// in the body.
func statusFor(resp models.ChatResponse) int {
	switch resp.Error {
	case models.ErrInappropriateLanguage, models.ErrLanguageMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusOK
	}
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
