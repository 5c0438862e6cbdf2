package main

import (
	"context"
	"os"

	"hospital-backend/cmd/bootstrap"
	"hospital-backend/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "hospital",
		Short:        "Hospital appointment and queue API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(auditCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}

			app, err := bootstrap.New(cfg)
			if err != nil {
				return err
			}
			return app.Run()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			db, err := bootstrap.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			return database.MigrateUp(db)
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, _ := cmd.Flags().GetInt("steps")

			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			db, err := bootstrap.OpenDatabase(cfg)
			if err != nil {
				return err
			}
			if err := database.MigrateDown(db, steps); err != nil {
				return err
			}
			logrus.Infof("Rolled back %d migration(s)", steps)
			return nil
		},
	}
	downCmd.Flags().Int("steps", 1, "number of migrations to roll back")

	cmd.AddCommand(upCmd, downCmd)
	return cmd
}

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit log maintenance",
	}

	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete audit log entries older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}

			days, _ := cmd.Flags().GetInt("days")
			if days <= 0 {
				days = cfg.Audit.RetentionDays
			}

			db, err := bootstrap.OpenDatabase(cfg)
			if err != nil {
				return err
			}

			result, err := bootstrap.NewAuditLogUsecase(cfg, db).ClearOldLogs(context.Background(), days)
			if err != nil {
				return err
			}
			logrus.Infof("Deleted %d audit log entries older than %d days", result.Deleted, result.Days)
			return nil
		},
	}
	purgeCmd.Flags().Int("days", 0, "retention window in days (defaults to AUDIT_RETENTION_DAYS)")

	cmd.AddCommand(purgeCmd)
	return cmd
}
