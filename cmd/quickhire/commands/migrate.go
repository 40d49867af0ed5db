package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quickhirelabor/quickhire/internal/config"
	"github.com/quickhirelabor/quickhire/internal/data"
	"github.com/quickhirelabor/quickhire/internal/logging/logger"
)

// NewMigrateCommand creates the migrate command
func NewMigrateCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %v", err)
			}

			d, err := data.New(cfg.Data, logger.StdLogger())
			if err != nil {
				return err
			}
			defer d.Close()

			if err := data.Migrate(context.Background(), d); err != nil {
				return fmt.Errorf("migration failed: %v", err)
			}
			fmt.Println("Schema applied")
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}
