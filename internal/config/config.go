package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"

	"github.com/solenechen/empath/internal/analysis/emotion"
)

// Config aggregates the whole service configuration.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Engine EngineConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	engine, err := loadEngineConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, AI: ai, Engine: engine}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig describes the optional LLM provider used for emotion scoring.
type AIConfig struct {
	APIKey          string
	AccessKey       string
	SecretKey       string
	Model           string
	BaseURL         string
	Region          string
	Temperature     *float64
	TopP            *float64
	MaxTokens       *int
	ProviderEnabled bool
}

// Enabled reports whether the required credentials are present.
func (c AIConfig) Enabled() bool {
	return c.Model != "" && (c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != ""))
}

// NewChatModel builds a model instance from the configuration.
func (c AIConfig) NewChatModel(ctx context.Context) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials or model missing: provide ARK_API_KEY + ARK_MODEL, or AK/SK")
	}

	var temperature *float32
	if c.Temperature != nil {
		val := float32(*c.Temperature)
		temperature = &val
	}

	var topP *float32
	if c.TopP != nil {
		val := float32(*c.TopP)
		topP = &val
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       c.Model,
		MaxTokens:   c.MaxTokens,
		Temperature: temperature,
		TopP:        topP,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	temperature, err := parseOptionalFloatEnv("ARK_TEMPERATURE")
	if err != nil {
		return AIConfig{}, err
	}

	topP, err := parseOptionalFloatEnv("ARK_TOP_P")
	if err != nil {
		return AIConfig{}, err
	}

	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	providerEnabled, err := parseBoolEnv("EMOTION_PROVIDER_ENABLED", false)
	if err != nil {
		return AIConfig{}, err
	}

	return AIConfig{
		APIKey:          strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:       strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:       strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		Model:           strings.TrimSpace(os.Getenv("ARK_MODEL")),
		BaseURL:         getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:          getEnvOrDefault("ARK_REGION", "cn-beijing"),
		Temperature:     temperature,
		TopP:            topP,
		MaxTokens:       maxTokens,
		ProviderEnabled: providerEnabled,
	}, nil
}

// EngineConfig carries the emotion-engine tunables. The window sizes, the
// negation credit and the neutral baseline are deliberately configuration
// rather than constants.
type EngineConfig struct {
	DefaultContext   emotion.Context
	NegationWindow   int
	NegationCredit   float64
	NeutralBaseline  float64
	RepetitionWindow int
	LexiconPath      string
	FactorsPath      string
	TemplatesPath    string
}

func loadEngineConfig() (EngineConfig, error) {
	cfg := EngineConfig{
		DefaultContext:   emotion.Default,
		NegationWindow:   3,
		NegationCredit:   0.5,
		NeutralBaseline:  0.5,
		RepetitionWindow: 3,
		LexiconPath:      strings.TrimSpace(os.Getenv("LEXICON_PATH")),
		FactorsPath:      strings.TrimSpace(os.Getenv("CULTURAL_FACTORS_PATH")),
		TemplatesPath:    strings.TrimSpace(os.Getenv("TEMPLATES_PATH")),
	}

	if raw := strings.TrimSpace(os.Getenv("DEFAULT_CULTURAL_CONTEXT")); raw != "" {
		cultural, ok := emotion.ParseContext(raw)
		if !ok {
			return EngineConfig{}, fmt.Errorf("invalid DEFAULT_CULTURAL_CONTEXT value %q", raw)
		}
		cfg.DefaultContext = cultural
	}

	if window, err := parseOptionalIntEnv("ENGINE_NEGATION_WINDOW"); err != nil {
		return EngineConfig{}, err
	} else if window != nil {
		if *window < 1 {
			return EngineConfig{}, fmt.Errorf("ENGINE_NEGATION_WINDOW must be at least 1")
		}
		cfg.NegationWindow = *window
	}

	if credit, err := parseOptionalFloatEnv("ENGINE_NEGATION_CREDIT"); err != nil {
		return EngineConfig{}, err
	} else if credit != nil {
		if *credit <= 0 || *credit > 1 {
			return EngineConfig{}, fmt.Errorf("ENGINE_NEGATION_CREDIT must be in (0,1]")
		}
		cfg.NegationCredit = *credit
	}

	if baseline, err := parseOptionalFloatEnv("ENGINE_NEUTRAL_BASELINE"); err != nil {
		return EngineConfig{}, err
	} else if baseline != nil {
		if *baseline <= 0 || *baseline > 1 {
			return EngineConfig{}, fmt.Errorf("ENGINE_NEUTRAL_BASELINE must be in (0,1]")
		}
		cfg.NeutralBaseline = *baseline
	}

	if window, err := parseOptionalIntEnv("ENGINE_REPETITION_WINDOW"); err != nil {
		return EngineConfig{}, err
	} else if window != nil {
		if *window < 1 {
			return EngineConfig{}, fmt.Errorf("ENGINE_REPETITION_WINDOW must be at least 1")
		}
		cfg.RepetitionWindow = *window
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
