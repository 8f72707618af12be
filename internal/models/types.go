package models

// Message represents a single conversation turn
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of POST /chat
type ChatRequest struct {
	Context             string    `json:"context"`
	Question            string    `json:"question"`
	ConversationHistory []Message `json:"conversation_history,omitempty"`
	Language            string    `json:"language,omitempty"`
}

// ChatResponse is the result of one pipeline run
type ChatResponse struct {
	Answer      string `json:"answer"`
	ContextUsed string `json:"context_used"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
}

// Error codes carried in ChatResponse.Error. The answer text is localized;
// these stay fixed so clients can branch on them.
const (
	ErrInappropriateLanguage = "Inappropriate language detected."
	ErrLanguageMismatch      = "Question language does not match selected language."
	ErrQuestionNotInFAQ      = "Question not found in FAQ."
)

// Supported language codes. Anything else is treated as English-shaped
// defaults, never rejected outright.
const (
	LangEnglish = "en"
	LangSinhala = "si"
	LangTamil   = "ta"
)
