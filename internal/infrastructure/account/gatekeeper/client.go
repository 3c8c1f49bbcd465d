package gatekeeper

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/leaguedesk/leaguedesk/internal/domain/user"
	"github.com/leaguedesk/leaguedesk/internal/platform/logging"
	"github.com/leaguedesk/leaguedesk/internal/platform/resilience"
	"github.com/leaguedesk/leaguedesk/internal/usecase"
)

// Client verifies access tokens against the gatekeeper account service.
// Introspection is the only auth surface this system consumes; sessions
// and credentials live entirely on the gatekeeper side.
type Client struct {
	httpClient    *http.Client
	introspectURL string
	breaker       *resilience.CircuitBreaker
	logger        *logging.Logger
}

func NewClient(httpClient *http.Client, baseURL, introspectPath string, breakerCfg resilience.CircuitBreakerConfig, logger *logging.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = logging.Default()
	}

	var breaker *resilience.CircuitBreaker
	if breakerCfg.Enabled {
		bc := resilience.NormalizeCircuitBreakerConfig(breakerCfg)
		breaker = resilience.NewCircuitBreaker(bc.FailureThreshold, bc.OpenTimeout, bc.HalfOpenMaxReq)
	}

	return &Client{
		httpClient:    httpClient,
		introspectURL: buildURL(baseURL, introspectPath),
		breaker:       breaker,
		logger:        logger,
	}
}

func (c *Client) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	encoded, err := sonic.Marshal(introspectRequest{Token: token})
	if err != nil {
		return user.Principal{}, fmt.Errorf("marshal introspect request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.introspectURL, bytes.NewReader(encoded))
	if err != nil {
		return user.Principal{}, fmt.Errorf("create introspect request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			return user.Principal{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "gatekeeper circuit open: %v", err)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordFailure()
		return user.Principal{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "request introspection to gatekeeper: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// A denial is a healthy answer from the breaker's point of view.
		c.recordSuccess()
		return user.Principal{}, fmt.Errorf("%w: introspection denied", usecase.ErrUnauthorized)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return user.Principal{}, fmt.Errorf("read introspect response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.recordFailure()
		c.logger.WarnContext(ctx, "gatekeeper introspection non-200",
			"status_code", resp.StatusCode,
		)
		return user.Principal{}, crerr.Wrapf(usecase.ErrDependencyUnavailable, "gatekeeper introspection failed with status %d", resp.StatusCode)
	}
	c.recordSuccess()

	var decoded introspectResponse
	if err := sonic.Unmarshal(body, &decoded); err != nil {
		return user.Principal{}, fmt.Errorf("unmarshal introspect response: %w", err)
	}

	if !decoded.Active {
		return user.Principal{}, fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)
	}
	if strings.TrimSpace(decoded.UserID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: user_id is empty")
	}
	if strings.TrimSpace(decoded.SessionID) == "" {
		return user.Principal{}, crerr.New("invalid introspect response: session_id is empty")
	}

	return user.Principal{
		UserID:    decoded.UserID,
		SessionID: decoded.SessionID,
		Email:     decoded.Email,
	}, nil
}

func (c *Client) recordSuccess() {
	if c.breaker != nil {
		c.breaker.RecordSuccess()
	}
}

func (c *Client) recordFailure() {
	if c.breaker != nil {
		c.breaker.RecordFailure()
	}
}

type introspectRequest struct {
	Token string `json:"token"`
}

type introspectResponse struct {
	Active    bool   `json:"active"`
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
}

func buildURL(baseURL, path string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return baseURL + path
}
