package llm

// DefaultOpenRouterURL is the OpenRouter OpenAI-compatible endpoint.
const DefaultOpenRouterURL = "https://openrouter.ai/api/v1"

var openrouterAliases = map[string]string{
	"claude-haiku": "anthropic/claude-haiku-4.5",
	"gpt-mini":     "openai/gpt-4o-mini",
	"gemini-flash": "google/gemini-2.5-flash",
}

// NewOpenRouterProvider returns a chat completions provider pointed at
// OpenRouter. Model names are OpenRouter slugs such as
// "anthropic/claude-haiku-4.5".
func NewOpenRouterProvider(cfg ProviderConfig) (*OpenAIProvider, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenRouterURL
	}
	return newChatCompletions("openrouter", cfg, openrouterAliases)
}
