package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"tripdesk/internal/models/response_models"
	"tripdesk/pkg/utils"
)

// tokenSafetyMargin is subtracted from the provider-declared expiry so a
// token is never used right at its edge.
const tokenSafetyMargin = 60 * time.Second

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

// TokenSource hands out a client-credentials token for the travel API.
// One instance is constructed at process start and shared by all adapters.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type amadeusTokenSource struct {
	cfg  AmadeusConfig
	http *http.Client

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func NewAmadeusTokenSource(cfg AmadeusConfig, client *http.Client) TokenSource {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &amadeusTokenSource{cfg: cfg, http: client}
}

// Token returns the cached token while it is inside the safety window.
// Expired concurrent callers each trigger their own refresh; duplicate
// grants are harmless to the provider and are not deduplicated.
func (s *amadeusTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.token != "" && time.Now().Before(s.expiresAt) {
		token := s.token
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	return s.refresh(ctx)
}

func (s *amadeusTokenSource) refresh(ctx context.Context) (string, error) {
	if s.cfg.ClientID == "" || s.cfg.ClientSecret == "" {
		return "", fmt.Errorf("%w: missing Amadeus credentials", utils.ErrConfiguration)
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", s.cfg.ClientID)
	form.Set("client_secret", s.cfg.ClientSecret)

	endpoint := strings.TrimRight(s.cfg.BaseURL, "/") + "/v1/security/oauth2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("amadeus token request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &utils.UpstreamError{
			Service: "amadeus",
			Status:  resp.StatusCode,
			Detail:  "token grant failed",
			Body:    string(body),
		}
	}

	var grant response_models.AmadeusTokenResponse
	if err := json.Unmarshal(body, &grant); err != nil {
		return "", fmt.Errorf("amadeus token decode: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(grant.ExpiresIn)*time.Second - tokenSafetyMargin)

	s.mu.Lock()
	s.token = grant.AccessToken
	s.expiresAt = expiresAt
	s.mu.Unlock()

	return grant.AccessToken, nil
}
