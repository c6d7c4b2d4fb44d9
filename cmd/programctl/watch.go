package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	watchSchedule string
	watchOpts     scanOptions

	watchCmd = &cobra.Command{
		Use:   "watch <program>",
		Short: "Scan a program on a cron schedule",
		Long: `Scan a program on a cron schedule until interrupted, optionally saving every
scan to a snapshot directory.

Examples:
  programctl watch dlmm --kind position --owner <wallet> --schedule "@every 5m"
  programctl watch marginfi --kind bank --parent <group> --schedule "0 * * * *" --store ./snapshots`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := lookupProgram(args[0])
			if err != nil {
				return err
			}

			log := logrus.StandardLogger().WithFields(logrus.Fields{
				"type":     "programctl/watch",
				"program":  p.name,
				"schedule": watchSchedule,
			})

			ctx := commandContext(cmd)

			// Overlapping runs are skipped.
			cronJob := cron.New(
				cron.WithLocation(time.Local),
				cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
			)
			_, err = cronJob.AddFunc(watchSchedule, func() {
				if _, err := runScan(ctx, p, &watchOpts); err != nil {
					log.WithError(err).Warn("scan failed")
				}
			})
			if err != nil {
				return err
			}

			cronJob.Start()
			log.Info("watching")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case <-sigCh:
			case <-ctx.Done():
			}

			log.Info("stopping")
			<-cronJob.Stop().Done()
			return nil
		},
	}
)

func init() {
	addScanFlags(watchCmd, &watchOpts)
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "@every 1m", "cron schedule")
}
