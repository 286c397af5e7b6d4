package usecase

import (
	"context"
	"time"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/repository"
	"github.com/ANURA4G/event-ticketing-app/internal/security"
	"github.com/ANURA4G/event-ticketing-app/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	TicketUsecaseInterface
	ScanUsecaseInterface
	StatsUsecaseInterface
}

// New constructs a new usecase layer with its dependencies. The error covers
// crypto setup (a malformed Fernet key).
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, cfg *config.Config, tokens *security.Tokens, timeout time.Duration) (InterfaceUsecase, error) {
	return domain.New(log, ctx, repo, cfg, tokens, timeout)
}
