// Package worker runs periodic maintenance tasks next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"
)

// Task is one unit of periodic maintenance.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Janitor runs its tasks on a fixed interval.
type Janitor struct {
	tasks    []Task
	interval time.Duration
}

// JanitorConfig holds configuration for the janitor.
type JanitorConfig struct {
	Interval time.Duration
}

// DefaultJanitorConfig returns the default janitor configuration.
func DefaultJanitorConfig() JanitorConfig {
	return JanitorConfig{
		Interval: time.Minute,
	}
}

// NewJanitor creates a janitor for the given tasks.
func NewJanitor(config JanitorConfig, tasks ...Task) *Janitor {
	return &Janitor{
		tasks:    tasks,
		interval: config.Interval,
	}
}

// Start begins the janitor loop. It blocks until the context is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	slog.Info("Janitor started",
		"interval", j.interval,
		"tasks", len(j.tasks),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Janitor shutting down")
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

// RunOnce runs every task a single time. A failing task does not stop the others.
func (j *Janitor) RunOnce(ctx context.Context) {
	for _, task := range j.tasks {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := task.Run(ctx); err != nil {
			slog.Error("Janitor task failed", "task", task.Name, "error", err)
			continue
		}
		slog.Debug("Janitor task completed", "task", task.Name)
	}
}
