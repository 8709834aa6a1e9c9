package spotify

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// ExpiryMargin is how long before its expiry a token is refreshed.
	ExpiryMargin = 10 * time.Second

	// defaultTokenLifetime applies when the token response has no
	// expires_in. Spotify documents one hour.
	defaultTokenLifetime = time.Hour
)

// tokenManager holds the application access token and refreshes it on
// demand. The check-and-refresh sequence in Token runs under mu.
type tokenManager struct {
	creds      Credentials
	tokenURL   string
	httpClient *http.Client
	now        func() time.Time
	logf       func(format string, args ...interface{})

	mu     sync.Mutex
	value  string
	expiry time.Time // When Spotify stops accepting value
}

// Token returns the held token until it is within ExpiryMargin of its
// expiry, otherwise performs a client credentials exchange first.
//
// A failed exchange leaves the held token in place. If that token has not
// actually expired yet it is still returned; otherwise the call fails with
// an ErrAuthentication error.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if m.value != "" && now.Before(m.expiry.Add(-ExpiryMargin)) {
		return m.value, nil
	}

	value, expiry, err := m.exchange(ctx)
	if err != nil {
		if m.value != "" && now.Before(m.expiry) {
			m.log("spotify: token refresh failed, using held token: %v", err)
			return m.value, nil
		}
		return "", err
	}

	m.value = value
	m.expiry = expiry
	return m.value, nil
}

// Invalidate drops the held token so the next call to Token exchanges
// credentials again.
func (m *tokenManager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.value = ""
	m.expiry = time.Time{}
}

// exchange requests a new token from the accounts service.
func (m *tokenManager) exchange(ctx context.Context) (string, time.Time, error) {
	cfg := &clientcredentials.Config{
		ClientID:     m.creds.ClientID,
		ClientSecret: m.creds.ClientSecret,
		TokenURL:     m.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	m.log("spotify: exchanging client credentials at %s", m.tokenURL)

	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
	tok, err := cfg.Token(ctx)
	if err != nil {
		authErr := &Error{Kind: ErrAuthentication, Err: err}
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			authErr.StatusCode = retrieveErr.Response.StatusCode
		}
		return "", time.Time{}, authErr
	}
	if tok.AccessToken == "" {
		return "", time.Time{}, &Error{Kind: ErrAuthentication, Message: "token response missing access_token"}
	}

	lifetime := defaultTokenLifetime
	switch {
	case tok.ExpiresIn > 0:
		lifetime = time.Duration(tok.ExpiresIn) * time.Second
	case !tok.Expiry.IsZero():
		lifetime = time.Until(tok.Expiry)
	}

	expiry := m.now().Add(lifetime)
	m.log("spotify: token acquired, expires at %s", expiry.Format(time.RFC3339))

	return tok.AccessToken, expiry, nil
}

func (m *tokenManager) log(format string, args ...interface{}) {
	if m.logf != nil {
		m.logf(format, args...)
	}
}
