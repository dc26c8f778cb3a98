package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	//environment variables
	GeminiAPIKeyEnv  = "GEMINI_API_KEY"
	OpenAIAPIKeyEnv  = "OPENAI_API_KEY"
	ModelNameEnv     = "MODEL_NAME"
	LLMProviderEnv   = "LLM_PROVIDER"
	PromptPathEnv    = "PROMPT_PATH"
	GeminiBaseURLEnv = "GEMINI_BASE_URL"
	OpenAIBaseURLEnv = "OPENAI_BASE_URL"
	DotEnvFile       = ".env"

	//llm providers
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	//prompt
	PromptFilePath  = "prompt.txt"
	DefaultPrompt   = "You are a helpful assistant for campus events Q&A."
	QueryLabel      = "User Query: "
	PromptSeparator = "\n\n"

	//user facing strings
	EmptyResponseFallback    = "Unable to generate a response. Please try again."
	ConfigurationErrorPrefix = "Configuration Error: "
	ProcessingErrorPrefix    = "Error processing query: "
	MissingAPIKeyMessage     = "API key not provided. Set %s environment variable or pass api_key parameter."

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second //llm calls have no timeout of their own
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"
	MaxQueryBodySize = 1 << 20

	//run modes
	ModeDemo = "demo"
	ModeHTTP = "http"
	ModeMCP  = "mcp"

	//mcp
	MCPServerName    = "campus-events-qa"
	MCPServerVersion = "1.0.0"
	MCPToolName      = "answer_campus_query"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second
)

// DemoQueries are issued in order by the demonstration mode.
var DemoQueries = []string{
	"When is the Tech Fest happening?",
	"Where is the Career Fair located?",
	"Tell me about the Hackathon",
	"What's the schedule for the Music Concert?",
	"Tell me a joke",           // non-event query
	"What's the weather like?", // non-event query
}
