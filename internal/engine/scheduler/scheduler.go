// Package scheduler drives fractal computation incrementally over a result cache.
package scheduler

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/fractal/internal/engine/cache"
	"go.trai.ch/zerr"
)

// DefaultBudget is the wall time a single Step may spend before yielding.
const DefaultBudget = 16 * time.Millisecond

// Progress reports the state of the current pass after a Step.
type Progress struct {
	// Column is the last world column the step finished.
	Column int
	// Columns is the number of columns finished in the pass so far.
	Columns int
	// Total is the number of columns the pass visits.
	Total int
	// Computed counts the cells the step computed, Hits those served from the cache.
	Computed int
	Hits     int
	// Failures counts cells whose computation failed during the step and were stored as 0.
	Failures int
	Done     bool
	Status   domain.PassStatus
}

type phase int

const (
	phasePixels phase = iota
	phaseTrace
	phaseDone
)

// pass is the resumable state of one walk over the visible window.
type pass struct {
	epoch    uint64
	phase    phase
	started  bool
	next     int
	lo, hi   int
	computed int
	warned   bool
	sweep    ports.PlaneSweep
	status   domain.PassStatus
}

// Scheduler computes the visible grid for a parameter record in bounded steps.
//
// Prepare, Step and Run must be called from a single goroutine. Grid, Column,
// Params and Status may be called concurrently with them.
type Scheduler struct {
	calc   ports.Calculator
	logger ports.Logger
	cache  *cache.Cache
	budget time.Duration
	now    func() time.Time

	pixel ports.PixelFunc
	pass  pass

	mu       sync.RWMutex
	params   domain.Params
	prepared bool
	status   domain.PassStatus
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithBudget sets the wall time a Step may spend before yielding.
func WithBudget(d time.Duration) Option {
	return func(s *Scheduler) {
		s.budget = d
	}
}

// WithClock replaces the time source used to measure the budget.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithCache makes the scheduler compute into c instead of a fresh cache.
func WithCache(c *cache.Cache) Option {
	return func(s *Scheduler) {
		s.cache = c
	}
}

// NewScheduler creates a Scheduler that binds computations through calc.
func NewScheduler(calc ports.Calculator, logger ports.Logger, opts ...Option) *Scheduler {
	s := &Scheduler{
		calc:   calc,
		logger: logger,
		budget: DefaultBudget,
		now:    time.Now,
		status: domain.PassStatusPending,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.New()
	}
	return s
}

// Prepare accepts a new parameter record and starts a new pass.
//
// The record is reconciled against the previous one and validated. A change
// outside the cache-preserving fields drops every cached value and rebinds
// the calculator, compiling custom formulas once. On error the previous
// record and pass stay in effect.
func (s *Scheduler) Prepare(p domain.Params) error {
	s.mu.RLock()
	prev, prepared := s.params, s.prepared
	s.mu.RUnlock()

	if !prepared {
		prev = p
	}
	next := domain.Reconcile(prev, p)
	if err := next.Validate(); err != nil {
		return err
	}

	rebind := !prepared || domain.RequiresInvalidation(prev, next)
	if rebind {
		if err := s.bind(next); err != nil {
			return err
		}
		s.cache.Invalidate()
	}

	if s.pass.started && !s.pass.status.IsTerminal() {
		s.logger.Info(fmt.Sprintf("superseding %s pass at column %d", prev.Kind, s.pass.next))
	}

	s.mu.Lock()
	s.params = next
	s.prepared = true
	s.mu.Unlock()

	s.pass = pass{epoch: s.cache.Epoch(), status: domain.PassStatusPending}
	s.setStatus(domain.PassStatusPending)
	return nil
}

func (s *Scheduler) bind(p domain.Params) error {
	if p.Kind.PlaneSweep() {
		if _, err := s.calc.BindPlane(p); err != nil {
			return err
		}
		s.pixel = nil
		return nil
	}
	fn, err := s.calc.Bind(p)
	if err != nil {
		return err
	}
	s.pixel = fn
	return nil
}

// Step performs a bounded amount of work on the current pass.
//
// Columns are visited in increasing world x and rows in increasing world y,
// skipping cached cells. Step returns after the column during which the
// accumulated wall time exceeded the budget; a column is never split.
func (s *Scheduler) Step(ctx context.Context) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}
	p, ok := s.Params()
	if !ok {
		return Progress{}, zerr.Wrap(domain.ErrNotPrepared, "step before prepare")
	}
	if s.pass.epoch != s.cache.Epoch() {
		s.fail()
		return Progress{}, zerr.With(zerr.Wrap(domain.ErrStalePass, "cache invalidated under the pass"), "kind", p.Kind.String())
	}
	if !s.pass.started {
		s.start(p)
	}

	prog := Progress{Column: s.pass.lo + s.pass.next - 1, Total: s.pass.hi - s.pass.lo}
	if s.pass.phase != phaseDone {
		s.setStatus(domain.PassStatusRunning)
	}

	start := s.now()
	for s.pass.phase != phaseDone {
		var err error
		switch s.pass.phase {
		case phasePixels:
			err = s.pixelColumn(p, &prog)
		case phaseTrace:
			err = s.traceColumn(&prog)
		}
		if err != nil {
			s.fail()
			return prog, err
		}
		if s.now().Sub(start) > s.budget {
			break
		}
	}

	prog.Columns = s.pass.next
	prog.Done = s.pass.phase == phaseDone
	if prog.Done {
		s.finish()
	}
	prog.Status = s.Status()
	return prog, nil
}

func (s *Scheduler) start(p domain.Params) {
	s.pass.started = true
	s.pass.lo, s.pass.hi = p.OffsetX, p.OffsetX+p.AxisSize
	if !p.Kind.PlaneSweep() {
		s.pass.phase = phasePixels
		return
	}

	// The sweep fills the cache once per epoch.
	if !s.cache.Empty() {
		s.pass.phase = phaseDone
		return
	}
	sweep, err := s.calc.BindPlane(p)
	if err != nil {
		// Prepare already bound the same record successfully.
		s.logger.Error(err)
		s.pass.phase = phaseDone
		return
	}
	s.pass.sweep = sweep
	s.pass.lo, s.pass.hi = sweep.Bounds()
	s.pass.phase = phaseTrace
}

// pixelColumn computes the uncached cells of the next column and publishes them at once.
func (s *Scheduler) pixelColumn(p domain.Params, prog *Progress) error {
	x := s.pass.lo + s.pass.next
	rows := make(map[int]float64, p.AxisSize)
	for y := p.OffsetY; y < p.OffsetY+p.AxisSize; y++ {
		if _, ok := s.cache.Lookup(x, y); ok {
			prog.Hits++
			continue
		}
		v, err := s.pixel(x, y)
		if err != nil {
			prog.Failures++
			s.warn(x, y, err)
			v = 0
		}
		rows[y] = v
	}
	if err := s.cache.StoreColumn(s.pass.epoch, x, rows); err != nil {
		return err
	}

	prog.Computed += len(rows)
	prog.Column = x
	s.pass.computed += len(rows)
	s.advance()
	return nil
}

// traceColumn feeds one input column to the sweep, committing the result after the last.
func (s *Scheduler) traceColumn(prog *Progress) error {
	x := s.pass.lo + s.pass.next
	s.pass.sweep.Trace(x)
	prog.Column = x
	s.pass.next++
	if s.pass.next < s.pass.hi-s.pass.lo {
		return nil
	}

	cells := s.pass.sweep.Normalized()
	if err := s.cache.Replace(s.pass.epoch, cells); err != nil {
		return err
	}
	for _, col := range cells {
		prog.Computed += len(col)
		s.pass.computed += len(col)
	}
	s.pass.phase = phaseDone
	return nil
}

func (s *Scheduler) advance() {
	s.pass.next++
	if s.pass.next >= s.pass.hi-s.pass.lo {
		s.pass.phase = phaseDone
	}
}

func (s *Scheduler) warn(x, y int, err error) {
	if s.pass.warned {
		return
	}
	s.pass.warned = true
	s.logger.Warn(fmt.Sprintf("pixel (%d, %d) failed, storing 0: %v", x, y, err))
}

func (s *Scheduler) finish() {
	if s.pass.status.IsTerminal() {
		return
	}
	if s.pass.computed == 0 {
		s.setStatus(domain.PassStatusCached)
		return
	}
	s.setStatus(domain.PassStatusCompleted)
}

func (s *Scheduler) fail() {
	s.pass.phase = phaseDone
	s.setStatus(domain.PassStatusFailed)
}

func (s *Scheduler) setStatus(st domain.PassStatus) {
	s.pass.status = st
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}

// Run drives Step until the pass is done, yielding the processor between steps.
// onProgress, if non-nil, is called after every step.
func (s *Scheduler) Run(ctx context.Context, onProgress func(Progress)) error {
	for {
		prog, err := s.Step(ctx)
		if err != nil {
			return err
		}
		if onProgress != nil {
			onProgress(prog)
		}
		if prog.Done {
			return nil
		}
		runtime.Gosched()
	}
}

// Params returns the accepted parameter record.
func (s *Scheduler) Params() (domain.Params, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params, s.prepared
}

// Status returns the lifecycle state of the current pass.
func (s *Scheduler) Status() domain.PassStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Cache returns the cache the scheduler computes into.
func (s *Scheduler) Cache() *cache.Cache {
	return s.cache
}

// Column returns screen column i of the visible window with the hue shift applied.
// Cells not computed yet read as 0.
func (s *Scheduler) Column(i int) []float64 {
	p, _ := s.Params()
	out := make([]float64, p.AxisSize)
	s.cache.Column(p.OffsetX+i, p.OffsetY, out)
	for j, v := range out {
		out[j] = domain.ShiftHue(v, p.HueShift)
	}
	return out
}

// Grid returns the visible window with the hue shift applied.
func (s *Scheduler) Grid() *domain.Grid {
	p, _ := s.Params()
	g := domain.NewGrid(p.AxisSize)
	for i := range p.AxisSize {
		col := g.Column(i)
		s.cache.Column(p.OffsetX+i, p.OffsetY, col)
		for j, v := range col {
			col[j] = domain.ShiftHue(v, p.HueShift)
		}
	}
	return g
}
