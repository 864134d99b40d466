// Package auth implements credential verification and session management
// for the HTTP API.
//
// Login issues a short-lived JWT access token together with an opaque
// refresh token. Refresh tokens live in an in-memory TTL store and are
// rotated on every use.
package auth

import (
	"context"

	"github.com/code19m/errx"

	"github.com/rise-and-shine/fileserve/hasher"
	"github.com/rise-and-shine/fileserve/kvstore"
	"github.com/rise-and-shine/fileserve/observability/logger"
	"github.com/rise-and-shine/fileserve/token"
)

const (
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
)

// TokenPair carries the tokens issued on login and refresh.
type TokenPair struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresAt  int64  `json:"access_token_expires_at"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresAt int64  `json:"refresh_token_expires_at"`
}

// Service verifies credentials and manages token sessions.
type Service struct {
	cfg      Config
	maker    *token.JWTMaker
	sessions *kvstore.Store[string] // refresh token -> username
	log      logger.Logger
}

// NewService creates an authentication service from static config users.
func NewService(cfg Config, log logger.Logger) (*Service, error) {
	maker, err := token.NewJWTMaker(cfg.JWTSecret)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	sessions := kvstore.New[string](
		kvstore.WithDefaultTTL(cfg.RefreshTokenTTL),
	)

	return &Service{
		cfg:      cfg,
		maker:    maker,
		sessions: sessions,
		log:      log.Named("auth"),
	}, nil
}

// Login verifies the username/password pair and issues a token pair.
func (s *Service) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, ok := s.findUser(username)

	// Compare against a constant hash on unknown users to keep
	// response timing uniform.
	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if ok {
		hash = user.PasswordHash
	}

	if !hasher.Compare(password, hash) || !ok {
		s.log.WithContext(ctx).With("username", username).Warn("login rejected")
		return nil, errx.New(
			"invalid username or password",
			errx.WithCode(CodeInvalidCredentials),
			errx.WithType(errx.T_Authentication),
		)
	}

	pair, err := s.issueTokens(user.Username)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	s.log.WithContext(ctx).With("username", username).Info("login succeeded")

	return pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
// The presented refresh token is invalidated regardless of outcome.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	username, ok := s.sessions.Get(refreshToken)
	if !ok {
		return nil, errx.New(
			"refresh token is invalid or expired",
			errx.WithCode(CodeInvalidRefreshToken),
			errx.WithType(errx.T_Authentication),
		)
	}

	s.sessions.Delete(refreshToken)

	pair, err := s.issueTokens(username)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	s.log.WithContext(ctx).With("username", username).Debug("session refreshed")

	return pair, nil
}

// VerifyAccessToken validates an access token and returns its subject.
func (s *Service) VerifyAccessToken(accessToken string) (string, error) {
	payload, err := s.maker.VerifyToken(accessToken)
	if err != nil {
		return "", errx.Wrap(err, errx.WithType(errx.T_Authentication))
	}
	return payload.Subject, nil
}

// Close releases the session store resources.
func (s *Service) Close() {
	s.sessions.Close()
}

func (s *Service) findUser(username string) (UserConfig, bool) {
	for _, u := range s.cfg.Users {
		if u.Username == username {
			return u, true
		}
	}
	return UserConfig{}, false
}

func (s *Service) issueTokens(username string) (*TokenPair, error) {
	accessToken, payload, err := s.maker.CreateToken(username, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	refreshToken := token.NewOpaqueToken()
	s.sessions.Set(refreshToken, username, s.cfg.RefreshTokenTTL)

	return &TokenPair{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  payload.ExpiresAt.Unix(),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: payload.IssuedAt.Add(s.cfg.RefreshTokenTTL).Unix(),
	}, nil
}
