package providers

// defaultModels holds the main rewrite model per provider.
var defaultModels = map[ID]string{
	OpenAI:     "gpt-4o",
	Anthropic:  "claude-3-5-sonnet-20240620",
	OpenRouter: "openai/gpt-4o",
	XAI:        "grok-2-latest",
}

// defaultCheckerModels holds the cheaper model used for the preservation check.
var defaultCheckerModels = map[ID]string{
	OpenAI:     "gpt-4o-mini",
	Anthropic:  "claude-3-haiku-20240307",
	OpenRouter: "openai/gpt-4o-mini",
	XAI:        "grok-3-mini",
}

// DefaultModel returns the default rewrite model for id. Unknown providers get
// the OpenAI default so that the failure surfaces at call time.
func DefaultModel(id ID) string {
	if m, ok := defaultModels[id]; ok {
		return m
	}
	return defaultModels[OpenAI]
}

// DefaultCheckerModel returns the default preservation-check model for id.
// Unknown providers get the OpenAI checker default.
func DefaultCheckerModel(id ID) string {
	if m, ok := defaultCheckerModels[id]; ok {
		return m
	}
	return defaultCheckerModels[OpenAI]
}
