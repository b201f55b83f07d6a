// Package bootstrap arma los adaptadores según la configuración (postgres o memoria,
// proveedor de tipos de cambio con o sin caché Redis). Lo usan cmd/api y cmd/revenuectl.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain/repository"
	"github.com/jhoicas/revenue-api/internal/infrastructure/exchange"
	"github.com/jhoicas/revenue-api/internal/infrastructure/memory"
	"github.com/jhoicas/revenue-api/internal/infrastructure/postgres"
	"github.com/jhoicas/revenue-api/pkg/config"
	"github.com/jhoicas/revenue-api/pkg/logger"
)

// Storage repositorios y tx runner del driver elegido.
type Storage struct {
	Clients       repository.ClientRepository
	Software      repository.SoftwareRepository
	Discounts     repository.DiscountRepository
	Contracts     repository.ContractRepository
	Payments      repository.PaymentRepository
	Users         repository.UserRepository
	RefreshTokens repository.RefreshTokenRepository
	TxRunner      ports.ContractTxRunner

	// Pool solo con driver postgres.
	Pool *pgxpool.Pool
}

// Close libera el pool si existe.
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}

// OpenStorage conecta el driver configurado en STORAGE_DRIVER.
func OpenStorage(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store := memory.NewStore()
		repos := store.Repositories()
		return &Storage{
			Clients:       repos.Clients,
			Software:      repos.Software,
			Discounts:     repos.Discounts,
			Contracts:     repos.Contracts,
			Payments:      repos.Payments,
			Users:         repos.Users,
			RefreshTokens: repos.RefreshTokens,
			TxRunner:      memory.NewTxRunner(store),
		}, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &Storage{
			Clients:       postgres.NewClientRepository(pool),
			Software:      postgres.NewSoftwareRepository(pool),
			Discounts:     postgres.NewDiscountRepository(pool),
			Contracts:     postgres.NewContractRepository(pool),
			Payments:      postgres.NewPaymentRepository(pool),
			Users:         postgres.NewUserRepository(pool),
			RefreshTokens: postgres.NewRefreshTokenRepository(pool),
			TxRunner:      postgres.NewTxRunner(pool),
			Pool:          pool,
		}, nil
	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %s", cfg.Storage.Driver)
	}
}

// NewRateProvider cliente de tipos de cambio, decorado con Redis si REDIS_URL está definido.
// Si Redis no responde se sigue sin caché. El cierre devuelto libera la conexión a Redis.
func NewRateProvider(ctx context.Context, cfg *config.Config, log *logger.Logger) (ports.ExchangeRateProvider, func()) {
	client := exchange.NewClient(exchange.Config{
		BaseURL:       cfg.Exchange.BaseURL,
		Timeout:       cfg.Exchange.Timeout,
		RatePerSecond: cfg.Exchange.RatePerSecond,
	}, log)
	if cfg.Redis.URL == "" {
		return client, func() {}
	}
	rdb, err := exchange.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis no disponible; tipos de cambio sin caché")
		return client, func() {}
	}
	log.Info().Dur("ttl", cfg.Exchange.CacheTTL).Msg("caché de tipos de cambio en Redis")
	return exchange.NewCachedProvider(client, rdb, cfg.Exchange.CacheTTL, log), func() { _ = rdb.Close() }
}
