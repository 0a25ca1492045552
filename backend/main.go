package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"vibevoice/backend/config"
	"vibevoice/backend/progress"
	"vibevoice/backend/utils"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vibevoice",
		Short:         "VibeVoice chat, speech and streaks API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newBadgesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("error loading catalog: %w", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat})

	gw, closers := buildGateway(ctx, cfg, catalog, logger)
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				logger.Printf("close provider: %v", err)
			}
		}
	}()

	engine := progress.NewEngine(progress.WithLocation(cfg.Timezone))
	app := newApp(cfg, engine, gw, logger)

	logger.Printf("listening on :%s (llm=%s speech=%s)", cfg.ServerPort, cfg.LLMProvider, cfg.SpeechProvider)
	return app.Listen(":" + cfg.ServerPort)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			catalog, err := config.LoadCatalog(cfg.CatalogFile)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "server_port\t%s\n", cfg.ServerPort)
			_, _ = fmt.Fprintf(w, "timezone\t%s\n", cfg.Timezone)
			_, _ = fmt.Fprintf(w, "llm_provider\t%s\n", cfg.LLMProvider)
			_, _ = fmt.Fprintf(w, "ollama\t%s (%s, timeout %s)\n", cfg.OllamaURL, cfg.OllamaModel, cfg.LLMTimeout)
			_, _ = fmt.Fprintf(w, "speech_provider\t%s (%s)\n", cfg.SpeechProvider, cfg.SpeechLanguage)
			_, _ = fmt.Fprintf(w, "personas\t%v (default %s)\n", catalog.PersonaNames(), catalog.DefaultPersona)
			return w.Flush()
		},
	}
}

func newBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "List the badge catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tMETRIC\tTHRESHOLD\tDESCRIPTION")
			for _, b := range progress.Catalog {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", b.ID, b.Name, b.Metric, b.Threshold, b.Description)
			}
			return w.Flush()
		},
	}
}
