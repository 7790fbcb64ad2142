// Package app implements the application layer for fractal.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/fractal/internal/adapters/imagefile"          //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/fractal/internal/engine/scheduler"
	"go.trai.ch/fractal/internal/expression"
	"go.trai.ch/fractal/internal/tui"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	calc          ports.Calculator
	logger        ports.Logger
	fingerprinter ports.Fingerprinter
	store         ports.SnapshotStore
	telemetry     ports.Telemetry
	streams       ports.StreamServer
	schedOptions  []scheduler.Option
	teaOptions    []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	calc ports.Calculator,
	log ports.Logger,
	fingerprinter ports.Fingerprinter,
	store ports.SnapshotStore,
	telemetry ports.Telemetry,
	streams ports.StreamServer,
) *App {
	return &App{
		configLoader:  loader,
		calc:          calc,
		logger:        log,
		fingerprinter: fingerprinter,
		store:         store,
		telemetry:     telemetry,
		streams:       streams,
	}
}

// WithSchedulerOptions adds options to every scheduler the App creates.
// This is primarily used for testing to control the step budget and clock.
func (a *App) WithSchedulerOptions(opts ...scheduler.Option) *App {
	a.schedOptions = append(a.schedOptions, opts...)
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// RenderOptions configuration for the Render method.
type RenderOptions struct {
	// ConfigPath is the parameter file; empty means the default file.
	ConfigPath string
	// Output is the image file to write; empty skips the export.
	Output string
	// NoSnapshot neither reads nor writes stored snapshots.
	NoSnapshot bool
	// Override adjusts the loaded record before it is accepted.
	Override func(*domain.Params)
	// TUI follows the render in an interactive terminal view.
	TUI bool
}

// RenderResult describes a finished render.
type RenderResult struct {
	Fingerprint string
	Params      domain.Params
	Status      domain.PassStatus
	Grid        *domain.Grid
}

// Render computes the grid described by the parameter file.
//
//nolint:cyclop // orchestration function
func (a *App) Render(ctx context.Context, opts RenderOptions) (*RenderResult, error) {
	// 1. Load the parameters
	p, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load parameters")
	}
	if opts.Override != nil {
		opts.Override(&p)
	}

	// 2. Accept them
	sched := scheduler.NewScheduler(a.calc, a.logger, a.schedOptions...)
	if err := sched.Prepare(p); err != nil {
		return nil, errors.Join(domain.ErrRenderFailed, err)
	}
	p, _ = sched.Params()
	fp := a.fingerprinter.Fingerprint(p)

	// 3. Seed the cache from a stored snapshot
	if !opts.NoSnapshot {
		a.seed(sched, fp)
	}

	// 4. Run the scheduler and report its progress concurrently
	ctx, telemetry, stopUI := a.recorder(ctx, opts.TUI)
	defer stopUI()

	vctx, vertex := telemetry.Record(ctx, fmt.Sprintf("render %s %dx%d [%s]", p.Kind, p.AxisSize, p.AxisSize, fp))
	progress := make(chan scheduler.Progress, 1)
	g, gctx := errgroup.WithContext(vctx)

	g.Go(func() error {
		defer close(progress)
		return sched.Run(gctx, func(prog scheduler.Progress) {
			select {
			case progress <- prog:
			case <-gctx.Done():
			}
		})
	})

	g.Go(func() error {
		failures := 0
		for prog := range progress {
			failures += prog.Failures
			_, _ = fmt.Fprintf(vertex.Stdout(), "column %d/%d\n", prog.Columns, prog.Total)
		}
		if failures > 0 {
			vertex.Log(domain.LogLevelWarn, fmt.Sprintf("%d pixels failed and were stored as 0", failures))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		vertex.Complete(err)
		return nil, errors.Join(domain.ErrRenderFailed, err)
	}

	status := sched.Status()
	if status == domain.PassStatusCached {
		vertex.Cached()
	}
	vertex.Complete(nil)

	// 5. Store the snapshot
	if !opts.NoSnapshot && status == domain.PassStatusCompleted {
		cells := sched.Cache().ExportWindow(p.OffsetX, p.OffsetY, p.AxisSize)
		snap := domain.Snapshot{Fingerprint: fp, Params: p, Cells: cells}
		if err := a.store.Put(snap); err != nil {
			return nil, zerr.Wrap(err, "failed to store snapshot")
		}
	}

	// 6. Export the image
	res := &RenderResult{Fingerprint: fp, Params: p, Status: status, Grid: sched.Grid()}
	if opts.Output != "" {
		if err := imagefile.WriteFile(opts.Output, res.Grid); err != nil {
			return nil, err
		}
		a.logger.Info("wrote " + opts.Output)
	}
	return res, nil
}

// recorder returns the telemetry a render records into. With withUI set it
// is a fresh recorder feeding a bubbletea program, and the returned context
// is canceled when the user quits the program. stop ends the recording and
// waits for the program to exit.
func (a *App) recorder(ctx context.Context, withUI bool) (context.Context, ports.Telemetry, func()) {
	if !withUI {
		return ctx, a.telemetry, func() {}
	}

	ctx, cancel := context.WithCancel(ctx)
	feed := tui.NewFeed()
	rec := progrock.NewRecorder(feed)
	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(os.Stderr)}, a.teaOptions...)
	program := tea.NewProgram(tui.NewModel(feed), opts...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()
		if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			a.logger.Error(zerr.Wrap(err, "terminal view failed"))
		}
	}()

	return ctx, rec, func() {
		_ = rec.Close()
		<-done
	}
}

// seed pre-fills the scheduler's cache from the snapshot stored under fp.
// A missing or unreadable snapshot only costs recomputation.
func (a *App) seed(sched *scheduler.Scheduler, fp string) {
	snap, err := a.store.Get(fp)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring snapshot %s: %v", fp, err))
		return
	}
	if snap == nil {
		return
	}
	c := sched.Cache()
	if err := c.Replace(c.Epoch(), snap.Cells); err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring snapshot %s: %v", fp, err))
	}
}

// Functions lists the operators, functions and constants custom formulas may use.
func (a *App) Functions() []expression.Descriptor {
	return expression.Describe()
}

// Serve streams computed columns to websocket clients on addr until ctx is done.
func (a *App) Serve(ctx context.Context, addr string) error {
	return a.streams.Serve(ctx, addr, a.stream)
}
