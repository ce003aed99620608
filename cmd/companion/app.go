package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dice-companion/internal/config"
	"github.com/KirkDiggler/dice-companion/internal/dice"
	"github.com/KirkDiggler/dice-companion/internal/errors"
	"github.com/KirkDiggler/dice-companion/internal/orchestrators/roll"
	"github.com/KirkDiggler/dice-companion/internal/orchestrators/table"
	"github.com/KirkDiggler/dice-companion/internal/pkg/clock"
	"github.com/KirkDiggler/dice-companion/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/dice-companion/internal/redis"
	"github.com/KirkDiggler/dice-companion/internal/repositories/profile"
	"github.com/KirkDiggler/dice-companion/internal/selection"
)

// app holds the wired dependencies for one command run
type app struct {
	profiles profile.Repository
	rolls    roll.Service
	table    *table.Controller
	redis    redisclient.Client // nil for the file store
	close    func()
}

func newApp(ctx context.Context, cmd *cobra.Command) (*app, error) {
	clk := clock.New()

	profiles, client, closeStore, err := newProfileRepository(ctx, cfg, clk)
	if err != nil {
		return nil, err
	}

	rolls, err := roll.NewOrchestrator(&roll.Config{
		Roller:      dice.NewToolkitRoller(),
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clk,
	})
	if err != nil {
		closeStore()
		return nil, errors.Wrap(err, "failed to create roll orchestrator")
	}

	controller, err := table.New(&table.Config{
		RollService: rolls,
		ProfileRepo: profiles,
		Selection:   selection.NewPrompt(cmd.InOrStdin(), cmd.OutOrStdout()),
	})
	if err != nil {
		closeStore()
		return nil, errors.Wrap(err, "failed to create table controller")
	}

	return &app{
		profiles: profiles,
		rolls:    rolls,
		table:    controller,
		redis:    client,
		close:    closeStore,
	}, nil
}

func newProfileRepository(ctx context.Context, cfg *config.Config, clk clock.Clock) (profile.Repository, redisclient.Client, func(), error) {
	switch cfg.Store {
	case config.StoreRedis:
		client, err := redisclient.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, nil, nil, err
		}
		closeClient := func() { _ = client.Close() }

		if err := redisclient.Ping(ctx, client); err != nil {
			closeClient()
			return nil, nil, nil, err
		}

		repo, err := profile.NewRedis(&profile.RedisConfig{Client: client, Clock: clk})
		if err != nil {
			closeClient()
			return nil, nil, nil, err
		}
		return repo, client, closeClient, nil
	default:
		repo, err := profile.NewFile(&profile.FileConfig{DataDir: cfg.DataDir, Clock: clk})
		if err != nil {
			return nil, nil, nil, err
		}
		return repo, nil, func() {}, nil
	}
}

// withApp runs fn with a wired app and closes it afterwards
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	return fn(ctx, a)
}
