package auth

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// TokenSource exchanges a service-account key for OAuth bearer tokens.
// The underlying oauth2 source caches tokens and refreshes on expiry, so
// the same instance is shared across all dispatch invocations.
type TokenSource struct {
	source oauth2.TokenSource
	logger zerolog.Logger
}

// NewTokenSource reads the service-account key file and builds a JWT-based
// token source scoped to the given permission.
func NewTokenSource(keyFile, scope string, logger zerolog.Logger) (*TokenSource, error) {
	keyJSON, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key %s: %w", keyFile, err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(keyJSON, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	logger.Info().
		Str("client_email", jwtConfig.Email).
		Str("scope", scope).
		Msg("service account token source initialized")

	return &TokenSource{
		source: jwtConfig.TokenSource(context.Background()),
		logger: logger,
	}, nil
}

// AccessToken returns a valid bearer token, exchanging the key if needed
func (s *TokenSource) AccessToken(ctx context.Context) (string, error) {
	token, err := s.source.Token()
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to exchange service account key for token")
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	return token.AccessToken, nil
}
