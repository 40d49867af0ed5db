package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickhirelabor/quickhire/internal/app"
	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the marketplace API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %v", err)
			}

			a, err := app.New(cfg)
			if err != nil {
				return err
			}

			// Logger level follows config file edits without a restart.
			config.Watch(func(updated *config.Config) {
				if updated.Logger != nil {
					logger.SetLevel(updated.Logger.Level)
				}
				logger.StdLogger().Info(cmd.Context(), "configuration reloaded")
			})

			return a.Run()
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}
