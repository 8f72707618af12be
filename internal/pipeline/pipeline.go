// Package pipeline sequences the answer-resolution stages for one chat
// request: safety filter, language consistency, intent shortcuts, FAQ
// resolution, and finally the language-model fallback. The first stage with
// a definitive response wins; nothing is shared between requests.
package pipeline

import (
	"context"
	"time"

	"github.com/Tasheela99/chat-bot/internal/i18n"
	"github.com/Tasheela99/chat-bot/internal/middleware"
	"github.com/Tasheela99/chat-bot/internal/models"
	"github.com/Tasheela99/chat-bot/internal/services/ai"
	"github.com/Tasheela99/chat-bot/internal/services/cache"
	"github.com/Tasheela99/chat-bot/internal/services/langcheck"
	"github.com/Tasheela99/chat-bot/internal/services/safety"
	"github.com/Tasheela99/chat-bot/internal/services/shortcut"
	"github.com/Tasheela99/chat-bot/internal/topics"
	"github.com/Tasheela99/chat-bot/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Stage identifies which pipeline stage produced the response. Used for
// logging and metrics labels, never for control flow.
type Stage string

const (
	StageSafetyRejected   Stage = "safety_rejected"
	StageLanguageRejected Stage = "language_rejected"
	StageShortcut         Stage = "shortcut"
	StageFAQ              Stage = "faq"
	StageFAQMiss          Stage = "faq_miss"
	StageCache            Stage = "cache"
	StageLLM              Stage = "llm"
	StageLLMError         Stage = "llm_error"
)

// Assembler orchestrates the resolution stages. All collaborators are
// injected once at startup; the assembler itself holds no request state.
type Assembler struct {
	registry  *topics.Registry
	shortcuts *shortcut.Matcher
	llm       ai.Service
	cache     cache.Service
	localizer *i18n.Localizer
	metrics   *middleware.Metrics
	logger    *logrus.Logger
}

func NewAssembler(
	registry *topics.Registry,
	shortcuts *shortcut.Matcher,
	llm ai.Service,
	cacheService cache.Service,
	localizer *i18n.Localizer,
	metrics *middleware.Metrics,
	logger *logrus.Logger,
) *Assembler {
	return &Assembler{
		registry:  registry,
		shortcuts: shortcuts,
		llm:       llm,
		cache:     cacheService,
		localizer: localizer,
		metrics:   metrics,
		logger:    logger,
	}
}

// HandleChat runs one request through the pipeline and returns the response
// together with the stage that produced it.
func (a *Assembler) HandleChat(ctx context.Context, req *models.ChatRequest) (models.ChatResponse, Stage) {
	lang := req.Language
	if lang == "" {
		lang = models.LangEnglish
	}

	log := logger.WithRequest(a.logger, req.Context, lang)

	if safety.ContainsDisallowed(req.Question) {
		log.Warn("Question rejected by safety filter")
		return models.ChatResponse{
			Answer:      a.localizer.Get(lang, i18n.MsgInappropriate, nil),
			ContextUsed: req.Context,
			Success:     false,
			Error:       models.ErrInappropriateLanguage,
		}, StageSafetyRejected
	}

	if !langcheck.MatchesDeclared(req.Question, lang) {
		log.Info("Question script does not match declared language")
		return models.ChatResponse{
			Answer:      a.localizer.Get(lang, i18n.MsgLanguageMismatch, nil),
			ContextUsed: req.Context,
			Success:     false,
			Error:       models.ErrLanguageMismatch,
		}, StageLanguageRejected
	}

	if answer, ok := a.shortcuts.Match(req.Question, lang, req.Context); ok {
		log.Debug("Answered by intent shortcut")
		return models.ChatResponse{
			Answer:      answer,
			ContextUsed: req.Context,
			Success:     true,
		}, StageShortcut
	}

	// A topic with a registered resolver is answered from its curated set
	// or not at all: a miss refers the user to the hotline instead of
	// risking an uncontrolled generative answer on a sensitive topic.
	if resolver := a.registry.ResolverFor(req.Context); resolver != nil {
		if answer, matched := resolver.Resolve(req.Question); matched {
			log.Debug("Answered from FAQ set")
			return models.ChatResponse{
				Answer:      answer,
				ContextUsed: req.Context,
				Success:     true,
			}, StageFAQ
		}

		log.Info("No FAQ match, referring to hotline")
		return models.ChatResponse{
			Answer:      a.localizer.Get(lang, i18n.MsgFaqHotline, nil),
			ContextUsed: req.Context,
			Success:     false,
			Error:       models.ErrQuestionNotInFAQ,
		}, StageFAQMiss
	}

	return a.invokeLLM(ctx, req, lang, log)
}

func (a *Assembler) invokeLLM(ctx context.Context, req *models.ChatRequest, lang string, log *logrus.Entry) (models.ChatResponse, Stage) {
	cacheable := len(req.ConversationHistory) == 0

	if cacheable {
		if answer, found := a.cache.Get(ctx, req.Context, lang, req.Question); found {
			a.metrics.RecordCacheHit()
			return models.ChatResponse{
				Answer:      answer,
				ContextUsed: req.Context,
				Success:     true,
			}, StageCache
		}
		a.metrics.RecordCacheMiss()
	}

	content := a.registry.Resolve(req.Context, lang)

	start := time.Now()
	answer, err := a.llm.Complete(ctx, content.SystemPrompt, content.ContextInfo, req.ConversationHistory, req.Question)
	if err != nil {
		a.metrics.RecordLLMRequest("error", time.Since(start))
		log.WithError(err).Error("LLM fallback failed")
		return models.ChatResponse{
			Answer:      "",
			ContextUsed: req.Context,
			Success:     false,
			Error:       err.Error(),
		}, StageLLMError
	}
	a.metrics.RecordLLMRequest("success", time.Since(start))

	if cacheable {
		if err := a.cache.Set(ctx, req.Context, lang, req.Question, answer); err != nil {
			log.WithError(err).Warn("Failed to cache answer")
		}
	}

	log.Debug("Answered by LLM fallback")
	return models.ChatResponse{
		Answer:      answer,
		ContextUsed: req.Context,
		Success:     true,
	}, StageLLM
}
