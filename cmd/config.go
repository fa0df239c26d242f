package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"commity/internal/config"
)

func newConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Edit the persisted configuration interactively",
		RunE: func(*cobra.Command, []string) error {
			return runConfigForm(configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to the config file")
	return cmd
}

func runConfigForm(path string) error {
	fc, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config file: %w", err)
	}

	provider := fc.Provider
	if provider == "" {
		provider = string(config.ProviderOllama)
	}
	endpoint := fc.Endpoint
	apiKey := fc.APIKey
	model := fc.Model
	language := fc.Language
	commitType := fc.CommitType

	tempStr := ""
	if fc.Temperature != nil {
		tempStr = fmt.Sprintf("%.2f", *fc.Temperature)
	}
	maxTokensStr := ""
	if fc.MaxTokens != nil {
		maxTokensStr = strconv.Itoa(*fc.MaxTokens)
	}
	timeoutStr := ""
	if fc.TimeoutSeconds != nil {
		timeoutStr = strconv.Itoa(*fc.TimeoutSeconds)
	}
	emoji := fc.Emoji != nil && *fc.Emoji

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Commity Configuration").
				Description("Settings are saved to "+displayPath(path)),

			huh.NewSelect[string]().
				Title("Provider").
				Options(
					huh.NewOption("Ollama (local)", string(config.ProviderOllama)),
					huh.NewOption("OpenAI", string(config.ProviderOpenAI)),
					huh.NewOption("Anthropic", string(config.ProviderAnthropic)),
					huh.NewOption("Google Gemini", string(config.ProviderGemini)),
				).
				Value(&provider),

			huh.NewInput().
				Title("Endpoint").
				Description("Base URL (leave empty for the provider default)").
				Placeholder("http://localhost:11434").
				Value(&endpoint),

			huh.NewInput().
				Title("API Key").
				Description("Required for hosted providers").
				Value(&apiKey).
				EchoMode(huh.EchoModePassword),

			huh.NewInput().
				Title("Model").
				Suggestions([]string{"llama3", "gpt-3.5-turbo", "claude-3-5-haiku-latest", "gemini-2.5-flash"}).
				Value(&model),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Temperature").
				Description("Sampling temperature (0.0 to 1.0)").
				Value(&tempStr).
				Validate(validateFloatRange(0, 1)),

			huh.NewInput().
				Title("Max Tokens").
				Value(&maxTokensStr).
				Validate(validateOptionalInt),

			huh.NewInput().
				Title("Timeout (seconds)").
				Value(&timeoutStr).
				Validate(validateOptionalInt),

			huh.NewInput().
				Title("Language").
				Description("Commit message language code (en, zh, ...)").
				Value(&language),

			huh.NewConfirm().
				Title("Gitmoji").
				Description("Include a gitmoji in the message?").
				Value(&emoji),
		),
	)

	if err := form.Run(); err != nil {
		fmt.Println("Operation cancelled.")
		return nil
	}

	fc.Provider = provider
	fc.Endpoint = endpoint
	fc.APIKey = apiKey
	fc.Model = model
	fc.Language = language
	fc.CommitType = commitType
	fc.Emoji = &emoji

	fc.Temperature = nil
	if v, err := strconv.ParseFloat(tempStr, 64); err == nil && tempStr != "" {
		fc.Temperature = &v
	}
	fc.MaxTokens = nil
	if v, err := strconv.Atoi(maxTokensStr); err == nil && maxTokensStr != "" {
		fc.MaxTokens = &v
	}
	fc.TimeoutSeconds = nil
	if v, err := strconv.Atoi(timeoutStr); err == nil && timeoutStr != "" {
		fc.TimeoutSeconds = &v
	}

	if err := config.Save(fc, path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("Configuration saved to %s\n", displayPath(path))
	return nil
}

func displayPath(path string) string {
	if path != "" {
		return path
	}
	return config.DefaultPath()
}

func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	_, err := strconv.Atoi(s)
	return err
}

func validateFloatRange(lo, hi float64) func(string) error {
	return func(s string) error {
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if v < lo || v > hi {
			return fmt.Errorf("must be between %.1f and %.1f", lo, hi)
		}
		return nil
	}
}
