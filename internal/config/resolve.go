package config

import (
	"os"
	"strconv"
	"time"
)

// Flags carries the command-line values. The *Set fields report whether the
// user passed the flag explicitly, so a zero value can still win over the
// file and defaults.
type Flags struct {
	Provider   string
	Endpoint   string
	APIKey     string
	Model      string
	Language   string
	CommitType string

	Emoji    bool
	EmojiSet bool

	Temperature    float64
	TemperatureSet bool

	MaxTokens    int
	MaxTokensSet bool

	TimeoutSeconds int
	TimeoutSet     bool
}

// Environment variables recognized during resolution.
const (
	EnvProvider    = "COMMITY_PROVIDER"
	EnvEndpoint    = "COMMITY_ENDPOINT"
	EnvAPIKey      = "COMMITY_API_KEY"
	EnvModel       = "COMMITY_MODEL"
	EnvTimeout     = "COMMITY_TIMEOUT"
	EnvTemperature = "COMMITY_TEMPERATURE"
	EnvMaxTokens   = "COMMITY_MAX_TOKENS"
	EnvLanguage    = "COMMITY_LANGUAGE"
)

// Resolve merges flag, environment, file and default values, in that order
// of precedence, then fills the remaining zero values via Normalize. The
// result is not validated.
func Resolve(fl Flags, fc FileConfig) Config {
	cfg := Config{
		Provider:   Provider(resolveString(fl.Provider, os.Getenv(EnvProvider), fc.Provider, string(ProviderOllama))),
		Endpoint:   resolveString(fl.Endpoint, os.Getenv(EnvEndpoint), fc.Endpoint, ""),
		APIKey:     resolveString(fl.APIKey, os.Getenv(EnvAPIKey), fc.APIKey, ""),
		Model:      resolveString(fl.Model, os.Getenv(EnvModel), fc.Model, ""),
		Language:   resolveString(fl.Language, os.Getenv(EnvLanguage), fc.Language, DefaultLanguage),
		CommitType: resolveString(fl.CommitType, "", fc.CommitType, DefaultCommitType),
		Extra:      fc.Extra,
	}

	cfg.Temperature = resolveFloat(fl.Temperature, fl.TemperatureSet, envFloat(EnvTemperature), fc.Temperature, DefaultTemperature)
	cfg.MaxTokens = resolveInt(fl.MaxTokens, fl.MaxTokensSet, envInt(EnvMaxTokens), fc.MaxTokens, DefaultMaxTokens)
	cfg.Emoji = resolveBool(fl.Emoji, fl.EmojiSet, fc.Emoji, false)

	seconds := resolveInt(fl.TimeoutSeconds, fl.TimeoutSet, envInt(EnvTimeout), fc.TimeoutSeconds, 0)
	cfg.Timeout = time.Duration(seconds) * time.Second

	cfg.Normalize()
	return cfg
}

func resolveString(flagVal, envVal, fileVal, defVal string) string {
	if flagVal != "" {
		return flagVal
	}
	if envVal != "" {
		return envVal
	}
	if fileVal != "" {
		return fileVal
	}
	return defVal
}

func resolveInt(flagVal int, flagSet bool, envVal *int, fileVal *int, defVal int) int {
	if flagSet {
		return flagVal
	}
	if envVal != nil {
		return *envVal
	}
	if fileVal != nil {
		return *fileVal
	}
	return defVal
}

func resolveFloat(flagVal float64, flagSet bool, envVal *float64, fileVal *float64, defVal float64) float64 {
	if flagSet {
		return flagVal
	}
	if envVal != nil {
		return *envVal
	}
	if fileVal != nil {
		return *fileVal
	}
	return defVal
}

func resolveBool(flagVal bool, flagSet bool, fileVal *bool, defVal bool) bool {
	if flagSet {
		return flagVal
	}
	if fileVal != nil {
		return *fileVal
	}
	return defVal
}

// envInt reads an integer environment variable. Malformed values are
// ignored so a stray export cannot break resolution.
func envInt(key string) *int {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func envFloat(key string) *float64 {
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
