// Package sessionservice manages customer credentials and login
// sessions.
package sessionservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/pkg/configpkg"
	"github.com/sunbelt-bank/bank-core/pkg/errorspkg"
	"github.com/sunbelt-bank/bank-core/pkg/tokenpkg"
)

// Repo provides the session store interface needed by the service.
//
//go:generate mockgen -source service.go -destination service_mock.go -package sessionservice
type Repo interface {
	Create(ctx context.Context, sess domain.Session) (domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service verifies customer credentials and mints access tokens.
type Service struct {
	credentials *Credentials
	repo        Repo
	TokenMaker  tokenpkg.Maker
	config      configpkg.Config
}

// New returns a session service backed by a PASETO token maker.
func New(credentials *Credentials, repo Repo, config configpkg.Config) (*Service, error) {
	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, err
	}

	return &Service{
		credentials: credentials,
		repo:        repo,
		TokenMaker:  tokenMaker,
		config:      config,
	}, nil
}

// Credentials exposes the credential store for wiring.
func (s *Service) Credentials() *Credentials {
	return s.credentials
}

// Login verifies the customer's secret and returns a fresh access
// token together with the created session.
func (s *Service) Login(ctx context.Context, fullName, secret string) (string, domain.Session, error) {
	l := zerolog.Ctx(ctx)

	var sess domain.Session

	if err := s.credentials.Verify(fullName, secret); err != nil {
		return "", sess, err
	}

	accessToken, payload, err := s.TokenMaker.CreateToken(fullName, s.config.AccessTokenDuration)
	if err != nil {
		l.Error().Err(err).Send()
		return "", sess, errorspkg.ErrInternal
	}

	sess = domain.Session{
		ID:        payload.ID,
		FullName:  fullName,
		ExpiresAt: payload.ExpiredAt,
		CreatedAt: time.Now(),
	}

	sess, err = s.repo.Create(ctx, sess)
	if err != nil {
		l.Error().Err(err).Send()
		return "", sess, errorspkg.ErrInternal
	}

	return accessToken, sess, nil
}

// Logout removes the session with the given ID.
func (s *Service) Logout(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UpdateSecret replaces the customer's secret after verifying the
// current one.
func (s *Service) UpdateSecret(ctx context.Context, fullName, currentSecret, newSecret string) error {
	if err := s.credentials.Verify(fullName, currentSecret); err != nil {
		return err
	}

	return s.credentials.Update(fullName, newSecret)
}
