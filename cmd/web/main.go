// @title           Job Tracker API
// @version         1.0
// @description     Tracks job applications per user.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:3000
// @BasePath        /

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jobtracker_backend/internal/app"
	"jobtracker_backend/internal/config"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:           "jobtracker",
		Short:         "Job application tracker API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML config (default $CONFIG_PATH or "+config.DefaultConfigPath+")")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE:  serve,
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema and exit",
			RunE:  migrate,
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("jobtracker %s\n", app.Version)
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := app.NewLogger(cfg)
	log.Info("Logger initialized", "env", cfg.Server.Env, "level", cfg.Log.Level)

	if err := app.Run(cfg, log); err != nil {
		log.Error("Server terminated", "error", err)
		return err
	}
	return nil
}

func migrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return app.Migrate(cfg, app.NewLogger(cfg))
}
