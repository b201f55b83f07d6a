package exchange

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/pkg/logger"
)

var _ ports.ExchangeRateProvider = (*CachedProvider)(nil)

const cacheKeyPrefix = "fx:"

// NewRedisClient abre la conexión desde una URL redis:// y verifica con Ping.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// CachedProvider decora un ExchangeRateProvider guardando cada par en Redis durante ttl.
// Si Redis falla se consulta directamente al proveedor.
type CachedProvider struct {
	next ports.ExchangeRateProvider
	rdb  redis.Cmdable
	ttl  time.Duration
	log  *logger.Logger
}

// NewCachedProvider construye el decorador.
func NewCachedProvider(next ports.ExchangeRateProvider, rdb redis.Cmdable, ttl time.Duration, log *logger.Logger) *CachedProvider {
	if log == nil {
		log = logger.Nop()
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &CachedProvider{next: next, rdb: rdb, ttl: ttl, log: log.Component("exchange")}
}

func cacheKey(from, to string) string {
	return cacheKeyPrefix + strings.ToUpper(from) + ":" + strings.ToUpper(to)
}

// Rate busca el par en caché y, si no está, lo pide al proveedor y lo guarda.
func (p *CachedProvider) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	key := cacheKey(from, to)

	raw, err := p.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		if r, perr := decimal.NewFromString(raw); perr == nil {
			return r, nil
		}
		p.log.Warn().Str("key", key).Msg("valor en caché inválido; se ignora")
	case errors.Is(err, redis.Nil):
	default:
		p.log.Warn().Err(err).Str("key", key).Msg("caché de tipos de cambio no disponible")
	}

	r, err := p.next.Rate(ctx, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	if err := p.rdb.Set(ctx, key, r.String(), p.ttl).Err(); err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("no se pudo guardar el tipo de cambio en caché")
	}
	return r, nil
}
