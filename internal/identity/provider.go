// Package identity hands out access tokens for identities, refreshing
// stored OAuth grants when their access token has expired.
package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"

	"github.com/carson-networks/walletsync/internal/clock"
	"github.com/carson-networks/walletsync/internal/storage/sqlconfig"
)

// ErrNoValidToken means the identity has no grant that can produce an
// access token for the requested scopes. It is a confirmed failure, not
// a transient one.
var ErrNoValidToken = errors.New("identity: no valid token")

const (
	invalidGrant = "invalid_grant"
	expirySkew   = 30 * time.Second
)

// TokenProvider returns an access token for identityID that carries every
// scope in scopes.
//
//go:generate mockery --name TokenProvider --inpackage --output . --filename mock_TokenProvider.go
type TokenProvider interface {
	AccessToken(ctx context.Context, identityID int64, scopes []string) (string, error)
}

// OAuthProvider backs TokenProvider with the identity_tokens table and the
// SSO refresh-token grant.
type OAuthProvider struct {
	tokens     sqlconfig.ITokenTable
	oauth      *oauth2.Config
	httpClient *http.Client
	clock      clock.Clock
	logger     *logrus.Logger
}

var (
	_ TokenProvider = (*OAuthProvider)(nil)
	_ TableBound    = (*OAuthProvider)(nil)
)

// TableBound is implemented by providers that read and write the token
// table. In returns a provider using tokens, so token refreshes made while
// a transaction is open go through that transaction.
type TableBound interface {
	In(tokens sqlconfig.ITokenTable) TokenProvider
}

func NewOAuthProvider(tokens sqlconfig.ITokenTable, tokenURL, clientID, clientSecret string, c clock.Clock, logger *logrus.Logger) *OAuthProvider {
	return &OAuthProvider{
		tokens: tokens,
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		clock:  c,
		logger: logger,
	}
}

// In returns a copy of the provider bound to tokens.
func (p *OAuthProvider) In(tokens sqlconfig.ITokenTable) TokenProvider {
	bound := *p
	bound.tokens = tokens
	return &bound
}

func (p *OAuthProvider) AccessToken(ctx context.Context, identityID int64, scopes []string) (string, error) {
	grants, err := p.tokens.ListValidByIdentity(ctx, identityID)
	if err != nil {
		return "", fmt.Errorf("identity: list tokens: %w", err)
	}

	now := p.clock.Now()
	for _, grant := range grants {
		if !hasScopes(grant.Scopes, scopes) {
			continue
		}
		if grant.AccessToken != "" && now.Add(expirySkew).Before(grant.ExpiresAt) {
			return grant.AccessToken, nil
		}

		access, err := p.refresh(ctx, grant)
		if errors.Is(err, ErrNoValidToken) {
			continue
		}
		if err != nil {
			return "", err
		}
		return access, nil
	}
	return "", ErrNoValidToken
}

// SaveGrant stores a refresh token for identityID. The access token is left
// empty so the first AccessToken call refreshes it.
func (p *OAuthProvider) SaveGrant(ctx context.Context, identityID int64, refreshToken string, scopes []string) error {
	now := p.clock.Now()
	_, err := p.tokens.Upsert(ctx, &sqlconfig.IdentityTokenUpsert{
		IdentityID:   identityID,
		RefreshToken: refreshToken,
		Scopes:       scopes,
		ExpiresAt:    now,
		UpdatedAt:    now,
	})
	return err
}

// refresh exchanges the grant's refresh token. A rejected grant is marked
// invalid and reported as ErrNoValidToken; anything else is transient.
func (p *OAuthProvider) refresh(ctx context.Context, grant *sqlconfig.IdentityToken) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	source := p.oauth.TokenSource(ctx, &oauth2.Token{
		RefreshToken: grant.RefreshToken,
		Expiry:       grant.ExpiresAt,
	})

	token, err := source.Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == invalidGrant {
			p.logger.WithFields(logrus.Fields{
				"identityID": grant.IdentityID,
				"tokenID":    grant.ID.String(),
			}).Warn("Identity.RefreshRejected")
			if err := p.tokens.Invalidate(ctx, grant.ID); err != nil {
				return "", fmt.Errorf("identity: invalidate token: %w", err)
			}
			return "", ErrNoValidToken
		}
		return "", fmt.Errorf("identity: refresh: %w", err)
	}

	refreshToken := token.RefreshToken
	if refreshToken == "" {
		refreshToken = grant.RefreshToken
	}
	err = p.tokens.UpdateAccess(ctx, grant.ID, token.AccessToken, refreshToken, token.Expiry, p.clock.Now())
	if err != nil {
		return "", fmt.Errorf("identity: store refreshed token: %w", err)
	}
	return token.AccessToken, nil
}

func hasScopes(granted []string, required []string) bool {
	for _, scope := range required {
		if !slices.Contains(granted, scope) {
			return false
		}
	}
	return true
}
