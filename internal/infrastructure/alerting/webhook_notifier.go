package alerting

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
	"github.com/leaguedesk/leaguedesk/internal/platform/resilience"
)

type WebhookNotifierConfig struct {
	URL            string
	Service        string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// WebhookNotifier posts operator alerts to an incident webhook. Delivery
// is best effort: a failed alert is logged and counted against the
// breaker, never propagated to the request that raised it.
type WebhookNotifier struct {
	client  *http.Client
	url     string
	service string
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewWebhookNotifier(cfg WebhookNotifierConfig, logger *logging.Logger) *WebhookNotifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}

	var breaker *resilience.CircuitBreaker
	if cfg.CircuitBreaker.Enabled {
		bc := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
		breaker = resilience.NewCircuitBreaker(bc.FailureThreshold, bc.OpenTimeout, bc.HalfOpenMaxReq)
	}

	return &WebhookNotifier{
		client:  &http.Client{Timeout: timeout},
		url:     strings.TrimSpace(cfg.URL),
		service: strings.TrimSpace(cfg.Service),
		breaker: breaker,
		logger:  logger,
	}
}

type alertPayload struct {
	Service   string `json:"service"`
	Event     string `json:"event"`
	SportID   string `json:"sport_id"`
	Detail    string `json:"detail"`
	Timestamp string `json:"timestamp"`
}

func (n *WebhookNotifier) NotifyRegistryMisconfigured(ctx context.Context, sportID string, cause error) {
	if n.url == "" {
		return
	}

	payload := alertPayload{
		Service:   n.service,
		Event:     "role_registry_misconfigured",
		SportID:   sportID,
		Detail:    cause.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := n.post(ctx, payload); err != nil {
		n.logger.ErrorContext(ctx, "operator alert delivery failed",
			"event", payload.Event,
			"sport_id", sportID,
			"error", err,
		)
	}
}

func (n *WebhookNotifier) post(ctx context.Context, payload alertPayload) error {
	if n.breaker != nil {
		if err := n.breaker.Allow(); err != nil {
			return crerr.Wrap(err, "alert webhook circuit open")
		}
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	encoded, err := sonic.Marshal(payload)
	if err != nil {
		return crerr.Wrap(err, "marshal alert payload")
	}
	buf.Set(encoded)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(buf.B))
	if err != nil {
		return crerr.Wrap(err, "create alert request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.recordFailure()
		return crerr.Wrap(err, "post alert")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		n.recordFailure()
		return crerr.Newf("alert webhook status %d", resp.StatusCode)
	}

	if n.breaker != nil {
		n.breaker.RecordSuccess()
	}
	return nil
}

func (n *WebhookNotifier) recordFailure() {
	if n.breaker != nil {
		n.breaker.RecordFailure()
	}
}
