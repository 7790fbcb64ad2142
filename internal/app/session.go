package app

import (
	"context"
	"errors"
	"io"

	"go.trai.ch/fractal/internal/core/domain"
	"go.trai.ch/fractal/internal/core/ports"
	"go.trai.ch/fractal/internal/engine/scheduler"
	"golang.org/x/sync/errgroup"
)

// stream serves one streaming client.
//
// A reader goroutine receives parameter records and keeps only the latest
// unconsumed one. The driver steps the scheduler between records and sends
// every finished screen column. A record arriving mid-pass supersedes it.
func (a *App) stream(ctx context.Context, conn ports.StreamConn) error {
	s := &session{
		sched:    scheduler.NewScheduler(a.calc, a.logger, a.schedOptions...),
		conn:     conn,
		incoming: make(chan domain.Params, 1),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.read(ctx) })
	g.Go(func() error { return s.drive(ctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

type session struct {
	sched    *scheduler.Scheduler
	conn     ports.StreamConn
	incoming chan domain.Params

	pass   uint64
	active bool
	sent   int
}

func (s *session) read(ctx context.Context) error {
	for {
		p, err := s.conn.Receive(ctx)
		switch {
		case errors.Is(err, domain.ErrInvalidParams):
			if err := s.send(ctx, domain.StreamEvent{Type: domain.StreamEventError, Message: err.Error()}); err != nil {
				return err
			}
			continue
		case err != nil:
			return err
		}

		// Latest wins: drop a record the driver has not picked up yet.
		select {
		case <-s.incoming:
		default:
		}
		select {
		case s.incoming <- p:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *session) drive(ctx context.Context) error {
	for {
		if !s.active {
			select {
			case p := <-s.incoming:
				if err := s.accept(ctx, p); err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
			continue
		}

		select {
		case p := <-s.incoming:
			if err := s.accept(ctx, p); err != nil {
				return err
			}
		default:
		}
		if err := s.step(ctx); err != nil {
			return err
		}
	}
}

// accept starts a pass for p. A rejected record leaves the current pass running.
func (s *session) accept(ctx context.Context, p domain.Params) error {
	if err := s.sched.Prepare(p); err != nil {
		return s.send(ctx, domain.StreamEvent{Type: domain.StreamEventError, Pass: s.pass, Message: err.Error()})
	}
	if s.active {
		if err := s.status(ctx, domain.PassStatusSuperseded); err != nil {
			return err
		}
	}
	s.pass++
	s.active = true
	s.sent = 0
	return s.status(ctx, domain.PassStatusPending)
}

func (s *session) step(ctx context.Context) error {
	prog, err := s.sched.Step(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.active = false
		if err := s.send(ctx, domain.StreamEvent{Type: domain.StreamEventError, Pass: s.pass, Message: err.Error()}); err != nil {
			return err
		}
		return s.status(ctx, domain.PassStatusFailed)
	}

	p, _ := s.sched.Params()
	finished := prog.Columns
	if p.Kind.PlaneSweep() {
		// Sweep columns are input columns; output is only known at the end.
		finished = 0
	}
	if prog.Done {
		finished = p.AxisSize
	}
	for ; s.sent < finished; s.sent++ {
		ev := domain.StreamEvent{Type: domain.StreamEventColumn, Pass: s.pass, Column: s.sent, Values: s.sched.Column(s.sent)}
		if err := s.send(ctx, ev); err != nil {
			return err
		}
	}

	if !prog.Done {
		return nil
	}
	s.active = false
	return s.status(ctx, prog.Status)
}

func (s *session) status(ctx context.Context, st domain.PassStatus) error {
	return s.send(ctx, domain.StreamEvent{Type: domain.StreamEventStatus, Pass: s.pass, Status: st})
}

func (s *session) send(ctx context.Context, ev domain.StreamEvent) error {
	return s.conn.Send(ctx, ev)
}
