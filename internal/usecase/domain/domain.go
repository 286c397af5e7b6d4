package domain

import (
	"context"
	"time"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/qr"
	"github.com/ANURA4G/event-ticketing-app/internal/repository"
	"github.com/ANURA4G/event-ticketing-app/internal/security"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	cfg     *config.Config
	hasher  *security.Hasher
	tokens  *security.Tokens
	codec   *qr.Codec
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	cfg *config.Config,
	tokens *security.Tokens,
	timeout time.Duration,
) (*Usecase, error) {
	codec, err := qr.NewCodec(cfg.Security)
	if err != nil {
		return nil, err
	}
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		cfg:     cfg,
		hasher:  security.NewHasher(cfg.Security.BcryptCost),
		tokens:  tokens,
		codec:   codec,
		timeout: timeout,
	}, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
