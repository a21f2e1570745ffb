package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adalundhe/strikegate/core/analyzer"
	"github.com/adalundhe/strikegate/core/config"
	"github.com/adalundhe/strikegate/core/prompt"
	"github.com/adalundhe/strikegate/core/providers"
	"github.com/adalundhe/strikegate/core/schema"
	"github.com/adalundhe/strikegate/core/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(serveConfigPath)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(configPath string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Touch both compiled schemas so any compilation cost is paid here,
	// not on the first request.
	_ = schema.Request()
	_ = schema.Response()

	systemText, err := prompt.LoadSystemText(cfg.Prompt.SystemPath)
	if err != nil {
		return &analyzer.ConfigurationError{Asset: cfg.Prompt.SystemPath, Err: err}
	}

	assembler, err := prompt.NewAssembler(systemText)
	if err != nil {
		return &analyzer.ConfigurationError{Asset: cfg.Prompt.SystemPath, Err: err}
	}

	provider, err := providers.NewAnthropicProvider(providers.AnthropicConfig{
		APIKey:    cfg.Anthropic.APIKey,
		Model:     cfg.Anthropic.Model,
		MaxTokens: cfg.Anthropic.MaxTokens,
		BaseURL:   cfg.Anthropic.BaseURL,
	})
	if err != nil {
		return &analyzer.ConfigurationError{Asset: "anthropic credentials", Err: err}
	}

	a, err := analyzer.New(provider, assembler, logger)
	if err != nil {
		return err
	}

	srv := server.New(a, server.Config{
		Addr:           cfg.Server.Addr,
		AuthToken:      cfg.Server.AuthToken,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeoutSeconds) * time.Second,
	}, logger)

	if err := srv.Run(); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}
