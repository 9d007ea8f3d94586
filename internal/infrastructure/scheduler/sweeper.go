// Package scheduler ejecuta tareas periódicas del asistente con robfig/cron.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/Propiedades-api/internal/domain/repository"
	"github.com/jhoicas/Propiedades-api/pkg/logger"
)

// SweepRecorder recibe la cantidad de borradores borrados en cada pasada. Opcional.
type SweepRecorder interface {
	DraftsSwept(n int)
}

// DraftSweeper borra periódicamente los borradores cuyo último guardado supera el TTL.
type DraftSweeper struct {
	store    repository.DraftSweeper
	ttl      time.Duration
	recorder SweepRecorder
	log      *logger.Logger
	cron     *cron.Cron
}

// NewDraftSweeper construye el barrido. recorder y log pueden ser nil.
func NewDraftSweeper(store repository.DraftSweeper, ttl time.Duration, recorder SweepRecorder, log *logger.Logger) *DraftSweeper {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("draft_sweeper")
	return &DraftSweeper{
		store:    store,
		ttl:      ttl,
		recorder: recorder,
		log:      log,
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger{log: log}), cron.SkipIfStillRunning(cronLogger{log: log}))),
	}
}

// Start programa el barrido con la expresión cron (ej. "@every 1h") y arranca el planificador.
func (s *DraftSweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, func() { _, _ = s.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("programar barrido %q: %w", schedule, err)
	}
	s.cron.Start()
	s.log.Info().Str("schedule", schedule).Dur("ttl", s.ttl).Msg("barrido de borradores programado")
	return nil
}

// Stop detiene el planificador y espera a la pasada en curso o a que venza ctx.
func (s *DraftSweeper) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// RunOnce ejecuta una pasada: borra lo no guardado en el último ttl.
func (s *DraftSweeper) RunOnce(ctx context.Context) (int, error) {
	n, err := s.store.DeleteExpired(ctx, s.ttl)
	if err != nil {
		s.log.Error().Err(err).Msg("fallo el barrido de borradores vencidos")
		return 0, err
	}
	if s.recorder != nil {
		s.recorder.DraftsSwept(n)
	}
	if n > 0 {
		s.log.Info().Int("deleted", n).Dur("ttl", s.ttl).Msg("borradores vencidos eliminados")
	}
	return n, nil
}

// cronLogger adapta el logger de la aplicación a cron.Logger.
type cronLogger struct {
	log *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
