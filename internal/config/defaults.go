package config

const (
	defaultDataDir             = "~/.local/share/minutes"
	defaultLogDir              = "~/.local/share/minutes/logs"
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	defaultLLMBaseURL          = "https://openrouter.ai/api/v1/chat/completions"
	defaultLLMModel            = "openai/gpt-4o-mini"
	defaultLLMTimeoutSeconds   = 120
	defaultLLMTitle            = "Minutes Meeting Analyzer"
	defaultTranscriptCharLimit = 15000
	defaultMaxDecisions        = 10
	defaultMaxActionItems      = 15
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		LLM: LLM{
			BaseURL:        defaultLLMBaseURL,
			Model:          defaultLLMModel,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
		},
		Analysis: Analysis{
			TranscriptCharLimit: defaultTranscriptCharLimit,
			MaxDecisions:        defaultMaxDecisions,
			MaxActionItems:      defaultMaxActionItems,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
