package impl

import (
	"context"
	"log/slog"

	deliverycontext "pinesvet/internal/delivery/context"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/feed"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedService implements the NotificationUsecase interface.
type feedService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	logger           *slog.Logger
}

// FeedServiceParams holds dependencies for FeedService, injected by Fx.
type FeedServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	Logger           *slog.Logger
}

// NewFeedService is the constructor for feedService.
func NewFeedService(params FeedServiceParams) usecase.NotificationUsecase {
	return &feedService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		logger:           params.Logger,
	}
}

func (srv *feedService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetFeed returns the merged feed with the unread count and sound cue.
func (srv *feedService) GetFeed(ctx context.Context, userID uuid.UUID, lastSeenUnread int) (*usecase.FeedView, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("feed lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	entries, err := srv.notificationRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find feed entries")
	}

	merged := feed.New()
	for _, entry := range entries {
		merged.Apply(*entry)
	}

	unread := merged.Unread()

	return &usecase.FeedView{
		Entries:  merged.Sorted(),
		Unread:   unread,
		SoundCue: feed.SoundCue(lastSeenUnread, unread, user.SoundEnabled),
	}, nil
}

// MarkAllRead flags the whole feed as read and returns the flipped count.
func (srv *feedService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark feed as read")
	}

	srv.log(ctx).Debug("Marked feed read", slog.Any("userID", userID), slog.Int64("count", count))

	return count, nil
}

// RecordEntry folds one event into the user's persisted feed.
func (srv *feedService) RecordEntry(ctx context.Context, entry *entity.FeedEntry) error {
	if entry.SourceKey == "" || entry.UserID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("feed entry requires a user and source key")
	}

	return errors.Wrap(srv.notificationRepo.Upsert(ctx, entry), "failed to upsert feed entry")
}
