package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KwnLnrd/Gallopin/internal/config"
	"github.com/KwnLnrd/Gallopin/internal/db"
	"github.com/KwnLnrd/Gallopin/internal/logging"
	"github.com/KwnLnrd/Gallopin/internal/menu"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func connect(ctx context.Context) (*config.OperatorConfig, *pgxpool.Pool, *zap.Logger, error) {
	cfg, err := config.LoadOperator()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, false)
	pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, pool, log, nil
}

func newInitDBCmd() *cobra.Command {
	var (
		force    bool
		menuFile string
	)

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Create the schema and seed the menu",
		Long: `Create every table if missing, then load the menu.

The embedded Gallopin menu is used unless --menu points to a YAML file with
the same layout. An existing menu is kept unless --force is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := loadMenu(menuFile)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			_, pool, log, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			defer log.Sync()

			n, err := menu.NewService(menu.NewPostgresRepository(pool)).Seed(ctx, options, force)
			if err != nil {
				return err
			}

			if n == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Schema ready. Menu already present, nothing seeded (use --force to replace it).")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Schema ready. %d dishes seeded.\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Replace the current menu")
	cmd.Flags().StringVar(&menuFile, "menu", "", "YAML menu file (default: embedded Gallopin menu)")
	return cmd
}

func loadMenu(path string) ([]menu.FlavorOption, error) {
	if path == "" {
		return menu.DefaultMenu()
	}

	doc, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return menu.ParseSeed(doc)
}
