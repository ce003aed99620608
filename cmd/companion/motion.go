package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/motion"
)

var motionProfile string

var motionCmd = &cobra.Command{
	Use:   "motion",
	Short: "Roll a d20 each time motion is detected",
	Long: `Watch for motion and roll a d20 on every detection.

Each line read from stdin counts as one motion event. Close stdin or press
Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runMotion,
}

func init() {
	motionCmd.Flags().StringVar(&motionProfile, "profile", "", "character to make active while watching")
}

func runMotion(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if motionProfile != "" {
			if _, err := a.table.ActivateProfile(ctx, motionProfile); err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		g, ctx := errgroup.WithContext(ctx)

		watcher, err := motion.NewWatcher(&motion.Config{
			Sensor:       motion.NewLineSensor(ctx, cmd.InOrStdin()),
			SettleTime:   cfg.MotionSettle,
			PollInterval: cfg.MotionPoll,
			OnStatus: func(status string) {
				fmt.Fprintln(out, status)
			},
		})
		if err != nil {
			return err
		}

		detections := make(chan struct{})

		g.Go(func() error {
			defer close(detections)
			for {
				err := watcher.Watch(ctx, func() {
					select {
					case detections <- struct{}{}:
					case <-ctx.Done():
					}
				})
				if err != nil {
					return err
				}
			}
		})

		g.Go(func() error {
			for range detections {
				if _, err := a.table.OnMotion(ctx); err != nil {
					return err
				}
				result, err := a.table.Reveal()
				if err != nil {
					return err
				}
				printResult(out, result)
				a.table.Dismiss()
			}
			return nil
		})

		err = g.Wait()
		if errors.IsUnavailable(err) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}
