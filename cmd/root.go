// Package cmd wires the CLI: flag handling, config resolution, and the
// generate/confirm/commit loop.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"commity/internal/config"
	"commity/internal/generator"
	"commity/internal/gitx"
	"commity/internal/llm"
	"commity/internal/llm/providers"
	"commity/internal/prompt"
)

var version = "dev"

type rootOptions struct {
	flags      config.Flags
	repo       string
	configPath string
	hookFile   string
	yes        bool
	showConfig bool
}

func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "commity",
		Short:         "Generate a commit message for your staged changes with an LLM",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			markSetFlags(cmd, opts)
			return runGenerate(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.flags.Provider, "provider", "", "LLM provider (ollama, openai, anthropic, gemini)")
	f.StringVar(&opts.flags.Endpoint, "endpoint", "", "provider base URL")
	f.StringVar(&opts.flags.APIKey, "api-key", "", "API key for hosted providers")
	f.StringVar(&opts.flags.Model, "model", "", "model name")
	f.StringVar(&opts.flags.Language, "language", "", "language for the commit message")
	f.StringVar(&opts.flags.CommitType, "type", "", "commit style (conventional)")
	f.BoolVar(&opts.flags.Emoji, "emoji", false, "include gitmoji in the message")
	f.Float64Var(&opts.flags.Temperature, "temperature", 0, "sampling temperature (0 to 1)")
	f.IntVar(&opts.flags.MaxTokens, "max-tokens", 0, "max tokens for generation")
	f.IntVar(&opts.flags.TimeoutSeconds, "timeout", 0, "request timeout in seconds")
	f.StringVar(&opts.repo, "repo", "", "path to the git repository")
	f.StringVar(&opts.configPath, "config", "", "path to the config file")
	f.StringVar(&opts.hookFile, "hook", "", "write the message to this file instead of committing")
	f.BoolVarP(&opts.yes, "yes", "y", false, "commit without confirmation")
	f.BoolVar(&opts.showConfig, "show-config", false, "print the resolved configuration and exit")

	cmd.AddCommand(newConfigCmd(), newInstallHookCmd())
	return cmd
}

// markSetFlags records which value flags the user passed explicitly, so an
// explicit zero (e.g. --temperature=0) still overrides the file value.
func markSetFlags(cmd *cobra.Command, opts *rootOptions) {
	opts.flags.EmojiSet = cmd.Flags().Changed("emoji")
	opts.flags.TemperatureSet = cmd.Flags().Changed("temperature")
	opts.flags.MaxTokensSet = cmd.Flags().Changed("max-tokens")
	opts.flags.TimeoutSet = cmd.Flags().Changed("timeout")
}

func runGenerate(ctx context.Context, opts *rootOptions) error {
	fc, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	cfg := config.Resolve(opts.flags, fc)

	if opts.showConfig {
		printConfig(cfg)
		return nil
	}

	// Validation is fatal before anything touches the network or the repo.
	if err := cfg.Validate(); err != nil {
		return err
	}

	client, err := providers.New(cfg)
	if err != nil {
		return err
	}

	repoRoot, err := gitx.ResolveRepoRoot(ctx, opts.repo)
	if err != nil {
		return err
	}

	diff, err := gitx.StagedDiff(ctx, repoRoot)
	if err != nil {
		return err
	}
	if diff.Empty() {
		fmt.Println(warnStyle.Render("No staged changes detected. Run: git add"))
		return nil
	}
	diff.Text = prompt.Fit(diff.Text, cfg.MaxTokens)

	style := prompt.StyleOptions{
		UseEmoji:   cfg.Emoji,
		Language:   cfg.Language,
		CommitType: cfg.CommitType,
	}
	genOpts := generator.Options{Model: cfg.Model}

	for {
		msg, err := generateWithSpinner(ctx, diff, style, client, genOpts)
		if err != nil {
			return err
		}

		if opts.yes {
			return deliver(ctx, repoRoot, opts.hookFile, msg)
		}

		action, msg, err := confirmLoop(msg)
		if err != nil {
			return err
		}
		switch action {
		case actionCommit:
			return deliver(ctx, repoRoot, opts.hookFile, msg)
		case actionRegenerate:
			fmt.Println("Regenerating...")
			continue
		default:
			fmt.Println("Cancelled.")
			if opts.hookFile != "" {
				return fmt.Errorf("commit cancelled")
			}
			return nil
		}
	}
}

func generateWithSpinner(ctx context.Context, diff gitx.DiffInput, style prompt.StyleOptions, client llm.Client, opts generator.Options) (string, error) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " Generating commit message..."
	s.Start()
	defer s.Stop()

	return generator.Generate(ctx, diff, style, client, opts)
}

// deliver either writes the message for a prepare-commit-msg hook or runs
// the commit itself.
func deliver(ctx context.Context, repoRoot, hookFile, msg string) error {
	if hookFile != "" {
		if err := os.WriteFile(hookFile, []byte(msg), 0644); err != nil {
			return fmt.Errorf("write hook file: %w", err)
		}
		fmt.Println("Message written for git hook.")
		return nil
	}
	if err := gitx.Commit(ctx, repoRoot, msg); err != nil {
		return err
	}
	fmt.Println(okStyle.Render("Committed successfully."))
	return nil
}

func printConfig(cfg config.Config) {
	fmt.Println(titleStyle.Render("Current configuration"))
	fmt.Printf("  provider:     %s\n", cfg.Provider)
	fmt.Printf("  endpoint:     %s\n", cfg.Endpoint)
	fmt.Printf("  model:        %s\n", cfg.Model)
	fmt.Printf("  api key:      %s\n", maskKey(cfg.APIKey))
	fmt.Printf("  timeout:      %s\n", cfg.Timeout)
	fmt.Printf("  temperature:  %.2f\n", cfg.Temperature)
	fmt.Printf("  max tokens:   %d\n", cfg.MaxTokens)
	fmt.Printf("  language:     %s\n", cfg.Language)
	fmt.Printf("  emoji:        %v\n", cfg.Emoji)
	fmt.Printf("  type:         %s\n", cfg.CommitType)
}

func maskKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
