package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	deliverycontext "pinesvet/internal/delivery/context"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// newsletterService implements the NewsletterUsecase interface.
type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	logger         *slog.Logger
}

// NewsletterServiceParams holds dependencies for NewsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
	Logger         *slog.Logger
}

// NewNewsletterService is the constructor for newsletterService.
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
		logger:         params.Logger,
	}
}

func (srv *newsletterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe adds an email to the mailing list; duplicates are rejected.
func (srv *newsletterService) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid email address")
	}

	subscriber := &entity.NewsletterSubscriber{
		ID:    uuid.New(),
		Email: email,
	}
	if err := srv.newsletterRepo.Subscribe(ctx, subscriber); err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			return nil, domainerrors.ErrConflict.WrapMessage("email already subscribed")
		}

		return nil, errors.Wrap(err, "failed to subscribe")
	}

	srv.log(ctx).Debug("Newsletter signup", slog.String("email", email))

	return subscriber, nil
}

// ListSubscribers returns the full mailing list.
func (srv *newsletterService) ListSubscribers(ctx context.Context) ([]*entity.NewsletterSubscriber, error) {
	subscribers, err := srv.newsletterRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subscribers")
	}

	return subscribers, nil
}

// Unsubscribe removes an email from the mailing list.
func (srv *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	return errors.Wrap(srv.newsletterRepo.Unsubscribe(ctx, email), "failed to unsubscribe")
}
