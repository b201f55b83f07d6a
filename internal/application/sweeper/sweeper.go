// Package sweeper vence contratos sin firmar cuya vigencia terminó y marca sus pagos como reembolsados.
package sweeper

import (
	"context"
	"time"

	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
	"github.com/jhoicas/revenue-api/pkg/logger"
)

// DefaultInterval intervalo entre barridos si no se configura otro.
const DefaultInterval = 24 * time.Hour

// Result resumen de un barrido.
type Result struct {
	Deactivated int
	Refunded    int64
}

// Sweeper barrido periódico de expiración.
type Sweeper struct {
	txRunner ports.ContractTxRunner
	interval time.Duration
	log      *logger.Logger
	now      func() time.Time
}

// New construye el sweeper. interval <= 0 usa DefaultInterval.
func New(txRunner ports.ContractTxRunner, interval time.Duration, log *logger.Logger) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Sweeper{
		txRunner: txRunner,
		interval: interval,
		log:      log.Component("sweeper"),
		now:      time.Now,
	}
}

// Run barre de inmediato y luego en cada tick hasta que ctx se cancele.
// Un barrido fallido se registra y no detiene el ciclo.
func (s *Sweeper) Run(ctx context.Context) {
	s.log.Info().Dur("interval", s.interval).Msg("sweeper iniciado")
	s.sweepAndLog(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("sweeper detenido")
			return
		case <-ticker.C:
			s.sweepAndLog(ctx)
		}
	}
}

// SweepOnce ejecuta un barrido en una sola transacción: bloquea los contratos
// activos, sin firmar y con end_date < now, los desactiva y reembolsa sus pagos.
// Si ninguno coincide no escribe nada.
func (s *Sweeper) SweepOnce(ctx context.Context) (Result, error) {
	var res Result
	now := s.now()
	err := s.txRunner.RunContracts(ctx, func(
		contractRepo repository.ContractRepository,
		paymentRepo repository.PaymentRepository,
	) error {
		expired, err := contractRepo.ListExpiredForUpdate(ctx, now)
		if err != nil {
			return err
		}
		if len(expired) == 0 {
			return nil
		}
		ids := make([]string, 0, len(expired))
		for _, c := range expired {
			ids = append(ids, c.ID)
		}
		if err := contractRepo.DeactivateMany(ctx, ids, now); err != nil {
			return err
		}
		refunded, err := paymentRepo.MarkRefundedByContracts(ctx, ids)
		if err != nil {
			return err
		}
		res = Result{Deactivated: len(ids), Refunded: refunded}
		return nil
	})
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (s *Sweeper) sweepAndLog(ctx context.Context) {
	res, err := s.SweepOnce(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Error().Err(err).Msg("barrido de contratos vencidos")
		return
	}
	if res.Deactivated > 0 {
		s.log.Info().
			Int("deactivated", res.Deactivated).
			Int64("refunded_payments", res.Refunded).
			Msg("contratos vencidos desactivados")
	}
}
