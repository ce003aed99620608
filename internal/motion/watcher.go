// Package motion waits for a motion sensor and fires a roll trigger
package motion

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/dice-companion/internal/errors"
)

// Status messages reported while watching
const (
	StatusStabilizing = "Stabilizing sensor..."
	StatusReady       = "Ready - waiting for motion"
	StatusDetected    = "Motion detected!"
)

// DefaultPollInterval is used when the config leaves PollInterval unset
const DefaultPollInterval = 100 * time.Millisecond

// Sensor reports whether motion is present right now
type Sensor interface {
	Detect(ctx context.Context) (bool, error)
}

// Config holds the watcher settings
type Config struct {
	Sensor Sensor

	// SettleTime is how long the sensor needs after power-up before
	// readings are trusted
	SettleTime   time.Duration
	PollInterval time.Duration

	// OnStatus receives status messages. Optional.
	OnStatus func(status string)
}

// Validate ensures the watcher can run
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Sensor == nil {
		vb.RequiredField("Sensor")
	}
	if c.SettleTime < 0 {
		vb.InvalidField("SettleTime", "must not be negative")
	}
	if c.PollInterval < 0 {
		vb.InvalidField("PollInterval", "must not be negative")
	}

	return vb.Build()
}

// Watcher waits for the first detection, fires once and stops
type Watcher struct {
	sensor       Sensor
	settleTime   time.Duration
	pollInterval time.Duration
	onStatus     func(string)
}

// NewWatcher creates a watcher from cfg
func NewWatcher(cfg *Config) (*Watcher, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	poll := cfg.PollInterval
	if poll == 0 {
		poll = DefaultPollInterval
	}

	return &Watcher{
		sensor:       cfg.Sensor,
		settleTime:   cfg.SettleTime,
		pollInterval: poll,
		onStatus:     cfg.OnStatus,
	}, nil
}

// Watch blocks until motion is detected, then calls onDetected once and
// returns nil. It returns the context error when cancelled first, and stops
// on the first sensor error.
func (w *Watcher) Watch(ctx context.Context, onDetected func()) error {
	w.status(ctx, StatusStabilizing)

	if w.settleTime > 0 {
		timer := time.NewTimer(w.settleTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	w.status(ctx, StatusReady)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		detected, err := w.sensor.Detect(ctx)
		if err != nil {
			return errors.Wrap(err, "motion sensor failed")
		}
		if detected {
			w.status(ctx, StatusDetected)
			if onDetected != nil {
				onDetected()
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *Watcher) status(ctx context.Context, status string) {
	slog.DebugContext(ctx, "Motion watcher status", "status", status)
	if w.onStatus != nil {
		w.onStatus(status)
	}
}
