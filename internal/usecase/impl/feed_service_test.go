package impl

import (
	"context"
	"testing"
	"time"

	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/repository"
	mockRepo "pinesvet/internal/mocks/repository"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedServiceMocks struct {
	notificationRepo *mockRepo.MockNotificationRepository
	userRepo         *mockRepo.MockUserRepository
}

func newFeedService(t *testing.T) (usecase.NotificationUsecase, *feedServiceMocks) {
	mocks := &feedServiceMocks{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
	}
	feedService := NewFeedService(FeedServiceParams{
		NotificationRepo: mocks.notificationRepo,
		UserRepo:         mocks.userRepo,
		Logger:           newDiscardLogger(),
	})

	return feedService, mocks
}

func TestFeedService_GetFeed_SortsAndCounts(t *testing.T) {
	feedService, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, SoundEnabled: true}
	now := time.Now()
	entries := []*entity.FeedEntry{
		{SourceKey: "order:a", UserID: userID, Source: entity.FeedSourceOrder, Read: true, Timestamp: now.Add(-2 * time.Hour)},
		{SourceKey: "appointment:b", UserID: userID, Source: entity.FeedSourceAppointment, Read: false, Timestamp: now},
		{SourceKey: "care-plan:" + userID.String(), UserID: userID, Source: entity.FeedSourceCarePlan, Read: false, Timestamp: now.Add(-time.Hour)},
	}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.notificationRepo.EXPECT().FindByUser(ctx, userID).Return(entries, nil)

	view, err := feedService.GetFeed(ctx, userID, 0)
	require.NoError(t, err)
	require.Len(t, view.Entries, 3)
	// Newest first.
	assert.Equal(t, "appointment:b", view.Entries[0].SourceKey)
	assert.Equal(t, "care-plan:"+userID.String(), view.Entries[1].SourceKey)
	assert.Equal(t, "order:a", view.Entries[2].SourceKey)
	assert.Equal(t, 2, view.Unread)
	// Unread grew past what the client last saw, so the cue fires.
	assert.True(t, view.SoundCue)
}

func TestFeedService_GetFeed_NoCueWhenSoundDisabled(t *testing.T) {
	feedService, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, SoundEnabled: false}
	entries := []*entity.FeedEntry{
		{SourceKey: "order:a", UserID: userID, Read: false, Timestamp: time.Now()},
	}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.notificationRepo.EXPECT().FindByUser(ctx, userID).Return(entries, nil)

	view, err := feedService.GetFeed(ctx, userID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Unread)
	assert.False(t, view.SoundCue)
}

func TestFeedService_GetFeed_NoCueWithoutNewUnread(t *testing.T) {
	feedService, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, SoundEnabled: true}
	entries := []*entity.FeedEntry{
		{SourceKey: "order:a", UserID: userID, Read: false, Timestamp: time.Now()},
	}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.notificationRepo.EXPECT().FindByUser(ctx, userID).Return(entries, nil)

	view, err := feedService.GetFeed(ctx, userID, 1)
	require.NoError(t, err)
	assert.False(t, view.SoundCue)
}

func TestFeedService_GetFeed_UnknownUser(t *testing.T) {
	feedService, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	view, err := feedService.GetFeed(ctx, userID, 0)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestFeedService_MarkAllRead(t *testing.T) {
	feedService, mocks := newFeedService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(3), nil)

	count, err := feedService.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestFeedService_RecordEntry_RequiresSourceKey(t *testing.T) {
	feedService, _ := newFeedService(t)

	err := feedService.RecordEntry(context.Background(), &entity.FeedEntry{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestFeedService_RecordEntry_Upserts(t *testing.T) {
	feedService, mocks := newFeedService(t)

	ctx := context.Background()
	entry := &entity.FeedEntry{
		SourceKey: "appointment:" + uuid.NewString(),
		UserID:    uuid.New(),
		Source:    entity.FeedSourceAppointment,
		Title:     "Appointment confirmed",
		Timestamp: time.Now(),
	}

	mocks.notificationRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.FeedEntry")).
		Return(nil)

	err := feedService.RecordEntry(ctx, entry)
	require.NoError(t, err)
}
