package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/jhoicas/revenue-api/internal/application/ports"
	"github.com/jhoicas/revenue-api/internal/domain"
	"github.com/jhoicas/revenue-api/pkg/logger"
)

var _ ports.ExchangeRateProvider = (*Client)(nil)

// Config parámetros del cliente HTTP de tipos de cambio.
type Config struct {
	BaseURL       string        // ej. https://open.er-api.com/v6/latest
	Timeout       time.Duration // timeout de red por llamada
	RatePerSecond int           // llamadas salientes por segundo
}

// Client adaptador de ExchangeRateProvider sobre la API pública de er-api.
// GET {BaseURL}/{FROM} -> {"result":"success","base_code":"PLN","rates":{"EUR":0.23,...}}
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        *logger.Logger
}

// NewClient construye el adaptador. log nil = silencioso.
func NewClient(cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	rps := cfg.RatePerSecond
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		log:        log.Component("exchange"),
	}
}

type latestResponse struct {
	Result    string                     `json:"result"`
	BaseCode  string                     `json:"base_code"`
	ErrorType string                     `json:"error-type"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// Rate devuelve cuántas unidades de to equivalen a una de from.
func (c *Client) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrExchangeService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+from, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: crear request: %v", domain.ErrExchangeService, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("from", from).Msg("llamada a tipos de cambio fallida")
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrExchangeService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: leer respuesta: %v", domain.ErrExchangeService, err)
	}
	c.log.Debug().
		Str("from", from).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("tipos de cambio consultados")

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: HTTP %d", domain.ErrExchangeService, resp.StatusCode)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return decimal.Zero, fmt.Errorf("%w: respuesta inválida: %v", domain.ErrExchangeService, err)
	}
	if parsed.Result != "success" {
		// er-api responde 200 con result=error para monedas base desconocidas
		if parsed.ErrorType == "unsupported-code" {
			return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrRateNotFound, from)
		}
		return decimal.Zero, fmt.Errorf("%w: result=%s %s", domain.ErrExchangeService, parsed.Result, parsed.ErrorType)
	}

	r, ok := parsed.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s->%s", domain.ErrRateNotFound, from, to)
	}
	return r, nil
}
