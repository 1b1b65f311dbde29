package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/KwnLnrd/Gallopin/internal/stats"
	"github.com/KwnLnrd/Gallopin/internal/storage"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset-data",
		Short: "Empty every statistics table",
		Long: `Truncate generated reviews, menu selections, qualitative tags and
internal feedback, restarting their ids at 1. Menu and staff are kept.

When R2 is configured a JSON snapshot is uploaded first; a failed upload
aborts the reset.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}

			ctx := cmd.Context()
			cfg, pool, log, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()
			defer log.Sync()

			var archiver stats.Archiver
			if cfg.R2.Enabled() {
				archive, err := storage.NewR2Archive(ctx, storage.R2Options{
					Endpoint:  cfg.R2.Endpoint,
					AccessKey: cfg.R2.AccessKey,
					SecretKey: cfg.R2.SecretKey,
					Bucket:    cfg.R2.Bucket,
				})
				if err != nil {
					return err
				}
				archiver = archive
			}

			service := stats.NewService(stats.NewPostgresRepository(pool), nil, archiver, time.UTC, log)
			if err := service.Reset(ctx); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Statistics reset.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the irreversible reset")
	return cmd
}
