package main

import (
	"github.com/joho/godotenv"
	"github.com/praqsys/edidctl/internal/assistant"
	"github.com/praqsys/edidctl/internal/config"
	"github.com/praqsys/edidctl/internal/observability"
	"github.com/praqsys/edidctl/internal/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the EDID HTTP service",
		RunE: func(_ *cobra.Command, _ []string) error {
			// Pick up EDIDCTL_ASSISTANT_KEY from a local .env during
			// development; absence is fine.
			_ = godotenv.Load()

			cfg, err := config.LoadServiceConfig(configPath)
			if err != nil {
				return err
			}

			observability.InitLogger(cfg.Name)

			agent := buildAgent(cfg.Assistant)
			if !agent.Configured() {
				log.Warn().Msg("assistant not configured, analyze endpoint disabled")
			}

			return server.New(cfg, agent).Serve()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to TOML service config")
	return cmd
}

func buildAgent(cfg config.AssistantConfig) *assistant.Agent {
	client := assistant.NewClient(cfg.Endpoint, cfg.APIKey,
		assistant.WithModel(cfg.Model),
		assistant.WithHTTPTimeout(cfg.Timeout),
	)
	return assistant.NewAgent(client)
}
