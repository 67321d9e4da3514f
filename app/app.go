// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package app runs parameter-driven command line tools.
//
// An App loads a run parameter file into a [loam.Store], validates the
// parameters the tool depends on and then hands the store to one or
// more tasks. The parameter file path is set with [Ini] and can be
// overridden on the command line with --ini.
package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"github.com/z5labs/loam"
	"github.com/z5labs/loam/console"
	"github.com/z5labs/loam/internal/try"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// Task is a unit of work which runs against a loaded parameter store.
type Task func(ctx context.Context, store *loam.Store) error

// App is a single-command tool around a parameter store.
type App struct {
	name      string
	iniPath   string
	required  []string
	storeOpts []loam.Option
	preRun    []Task
	postRun   []Task
	tasks     []Task

	store *loam.Store
	cmd   *cobra.Command
}

// Option configures an [App].
type Option func(*App)

// Ini sets the default run parameter file. The --ini flag overrides it.
func Ini(path string) Option {
	return func(a *App) {
		a.iniPath = path
	}
}

// Required declares the parameters the tool cannot run without. All
// missing parameters are reported together before any task starts.
func Required(specs ...string) Option {
	return func(a *App) {
		a.required = append(a.required, specs...)
	}
}

// LocalRoot sets the directory parameter paths are rewritten against.
func LocalRoot(path string) Option {
	return func(a *App) {
		a.storeOpts = append(a.storeOpts, loam.WithLocalRoot(path))
	}
}

// Console sets the console the store requests undefined parameters on.
func Console(c console.Console) Option {
	return func(a *App) {
		a.storeOpts = append(a.storeOpts, loam.WithConsole(c))
	}
}

// PreRun registers hooks which run after the parameter file is loaded
// and before any task starts. The first failing hook stops the app.
func PreRun(hooks ...Task) Option {
	return func(a *App) {
		a.preRun = append(a.preRun, hooks...)
	}
}

// PostRun registers hooks which run once the tasks have returned. They
// run even when a hook or task fails or panics, and their errors are
// joined onto the earlier ones.
func PostRun(hooks ...Task) Option {
	return func(a *App) {
		a.postRun = append(a.postRun, hooks...)
	}
}

// Run registers the tasks of the app. Multiple tasks run concurrently
// and the first failure cancels the context of the rest.
func Run(tasks ...Task) Option {
	return func(a *App) {
		a.tasks = append(a.tasks, tasks...)
	}
}

// New returns an [App] named after the tool.
func New(name string, opts ...Option) *App {
	a := &App{name: name}
	for _, opt := range opts {
		opt(a)
	}

	cmd := &cobra.Command{
		Use:           name,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&a.iniPath, "ini", a.iniPath, "run parameter file to load")
	a.cmd = cmd
	return a
}

func (a *App) load() error {
	store := loam.New(a.storeOpts...)
	if a.iniPath != "" {
		err := store.Load(a.iniPath)
		if err != nil {
			return err
		}
	}
	if len(a.required) > 0 {
		err := store.Require(a.required...)
		if err != nil {
			return err
		}
	}
	a.store = store
	return nil
}

func (a *App) run(ctx context.Context) (err error) {
	defer try.Recover(&err)

	// Post run hooks run even when a pre run hook or task failed.
	defer func() {
		for _, hook := range a.postRun {
			err = errors.Join(err, hook(ctx, a.store))
		}
	}()

	for _, hook := range a.preRun {
		err = hook(ctx, a.store)
		if err != nil {
			return err
		}
	}

	switch len(a.tasks) {
	case 0:
		return nil
	case 1:
		return a.runTask(ctx, a.tasks[0])
	default:
		g, gctx := errgroup.WithContext(ctx)
		for _, task := range a.tasks {
			g.Go(func() error {
				return a.runTask(gctx, task)
			})
		}
		return g.Wait()
	}
}

// Recovering per task keeps one panicking task from tearing down the
// process before the others are cancelled.
func (a *App) runTask(ctx context.Context, task Task) (err error) {
	defer try.Recover(&err)

	return task(ctx, a.store)
}

// Run parses the command line and executes the app. An interrupt signal
// cancels the context passed to the tasks. Failures are logged here;
// the exit code is the caller's to choose.
func (a *App) Run(ctx context.Context) error {
	sigCtx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	err := a.cmd.ExecuteContext(sigCtx)
	if err != nil {
		slog.Error("app failed", slog.String("app", a.name), slog.String("error", err.Error()))
	}
	return err
}
