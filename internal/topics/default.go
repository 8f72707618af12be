package topics

// defaultContent backs every topic identifier the registry does not know.
// Unknown topics are absorbed here rather than surfaced as errors.
var defaultContent = Content{
	SystemPrompt: "You are a helpful AI assistant for Sri Lankan government information services. Provide accurate, concise answers and direct citizens to the appropriate institution when a question falls outside your knowledge.",
	ContextInfo:  "General information service for Sri Lankan government institutions. For topic-specific details, please select a specific service.",
}
