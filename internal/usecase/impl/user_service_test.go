package impl

import (
	"context"
	"testing"
	"time"

	"pinesvet/config"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/plan"
	"pinesvet/internal/domain/repository"
	domainservice "pinesvet/internal/domain/service"
	mockRepo "pinesvet/internal/mocks/repository"
	mockSvc "pinesvet/internal/mocks/service"
	"pinesvet/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceMocks struct {
	txManager         *mockRepo.MockTransactionManager
	factory           *mockRepo.MockRepositoryFactory
	userRepo          *mockRepo.MockUserRepository
	authRepo          *mockRepo.MockAuthRepository
	refreshTokenRepo  *mockRepo.MockRefreshTokenRepository
	deviceRepo        *mockRepo.MockDeviceRepository
	hasher            *mockSvc.MockPasswordHasher
	tokenService      *mockSvc.MockTokenService
	googleAuthService *mockSvc.MockOAuthAuthService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	mocks := &userServiceMocks{
		txManager:         mockRepo.NewMockTransactionManager(t),
		factory:           mockRepo.NewMockRepositoryFactory(t),
		userRepo:          mockRepo.NewMockUserRepository(t),
		authRepo:          mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo:  mockRepo.NewMockRefreshTokenRepository(t),
		deviceRepo:        mockRepo.NewMockDeviceRepository(t),
		hasher:            mockSvc.NewMockPasswordHasher(t),
		tokenService:      mockSvc.NewMockTokenService(t),
		googleAuthService: mockSvc.NewMockOAuthAuthService(t),
	}
	cfg := &config.Config{}
	cfg.SecretKey.Refresh = "refresh-secret"
	userService := NewUserService(UserServiceParams{
		TxManager:         mocks.txManager,
		UserRepo:          mocks.userRepo,
		AuthRepo:          mocks.authRepo,
		RefreshTokenRepo:  mocks.refreshTokenRepo,
		DeviceRepo:        mocks.deviceRepo,
		Hasher:            mocks.hasher,
		TokenService:      mocks.tokenService,
		GoogleAuthService: mocks.googleAuthService,
		Config:            cfg,
		Logger:            newDiscardLogger(),
	})

	return userService, mocks
}

func refreshTokenFor(userID uuid.UUID) *jwt.Token {
	return &jwt.Token{
		Valid:  true,
		Claims: jwt.MapClaims{"sub": userID.String(), "type": "refresh"},
	}
}

func TestUserService_Register_Success(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{
		Email:    "maria@example.com",
		Password: "Sunshine2024!",
		Name:     "Maria",
		Phone:    "0917-000-0000",
	}

	mocks.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewAuthRepository().Return(mocks.authRepo)

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "email", input.Email).
		Return(nil, repository.ErrAuthNotFound)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)
	mocks.authRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, "email", auth.Provider)
			assert.Equal(t, input.Email, auth.ProviderUserID)
			assert.Equal(t, "hashed-password", auth.PasswordHash)
		}).
		Return(nil)

	user, err := userService.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.UserStatusActive, user.Status)
	assert.Equal(t, string(plan.TierFree), user.Plan)
	assert.True(t, user.SoundEnabled)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	userService, mocks := newUserService(t)

	mocks.hasher.EXPECT().
		ValidatePasswordStrength("weak").
		Return(errors.New("password must be at least 8 characters long"))

	user, err := userService.Register(context.Background(), usecase.RegisterInput{
		Email:    "maria@example.com",
		Password: "weak",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	input := usecase.RegisterInput{Email: "maria@example.com", Password: "Sunshine2024!"}

	mocks.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	mocks.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewAuthRepository().Return(mocks.authRepo)

	existing := &entity.Authentication{ID: uuid.New(), Provider: "email", ProviderUserID: input.Email}
	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "email", input.Email).
		Return(existing, nil)

	user, err := userService.Register(ctx, input)
	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	authRecord := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         userID,
		Provider:       "email",
		ProviderUserID: "maria@example.com",
		PasswordHash:   "hashed-password",
	}
	user := &entity.User{ID: userID, Email: "maria@example.com", Status: entity.UserStatusActive}

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "email", "maria@example.com").
		Return(authRecord, nil)
	mocks.hasher.EXPECT().Check("Sunshine2024!", "hashed-password").Return(true)
	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("access-token", "refresh-token", nil)
	mocks.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	mocks.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	mocks.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, session *entity.RefreshToken) {
			assert.Equal(t, "refresh-hash", session.TokenHash)
			assert.Equal(t, userID, session.UserID)
		}).
		Return(nil)

	loggedIn, tokens, err := userService.Login(ctx, "maria@example.com", "Sunshine2024!")
	require.NoError(t, err)
	assert.Equal(t, userID, loggedIn.ID)
	assert.Equal(t, "access-token", tokens.AccessToken)
	assert.Equal(t, "refresh-token", tokens.RefreshToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	authRecord := &entity.Authentication{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		PasswordHash: "hashed-password",
	}

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "email", "maria@example.com").
		Return(authRecord, nil)
	mocks.hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	user, tokens, err := userService.Login(ctx, "maria@example.com", "wrong")
	assert.Nil(t, user)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "email", "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	user, tokens, err := userService.Login(ctx, "nobody@example.com", "whatever")
	assert.Nil(t, user)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_DeactivatedAccount(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	authRecord := &entity.Authentication{ID: uuid.New(), UserID: userID, PasswordHash: "hashed-password"}
	user := &entity.User{ID: userID, Status: entity.UserStatusInactive}

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "email", "maria@example.com").
		Return(authRecord, nil)
	mocks.hasher.EXPECT().Check("Sunshine2024!", "hashed-password").Return(true)
	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	loggedIn, tokens, err := userService.Login(ctx, "maria@example.com", "Sunshine2024!")
	assert.Nil(t, loggedIn)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_GoogleSignIn_ExistingCredential(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	oauthUser := &domainservice.OAuthUser{
		ID:       "google-sub-123",
		Email:    "maria@example.com",
		Name:     "Maria",
		Provider: "google",
	}
	authRecord := &entity.Authentication{ID: uuid.New(), UserID: userID, Provider: "google", ProviderUserID: oauthUser.ID}
	user := &entity.User{ID: userID, Status: entity.UserStatusActive}

	mocks.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewAuthRepository().Return(mocks.authRepo)

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "google", oauthUser.ID).
		Return(authRecord, nil)
	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	mocks.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("access-token", "refresh-token", nil)
	mocks.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	mocks.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	mocks.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	loggedIn, tokens, err := userService.GoogleSignIn(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, userID, loggedIn.ID)
	assert.NotNil(t, tokens)
}

func TestUserService_GoogleSignIn_FirstSignInCreatesAccount(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	oauthUser := &domainservice.OAuthUser{
		ID:       "google-sub-456",
		Email:    "new@example.com",
		Name:     "New Customer",
		Provider: "google",
	}

	mocks.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewAuthRepository().Return(mocks.authRepo)

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "google", oauthUser.ID).
		Return(nil, repository.ErrAuthNotFound)
	mocks.userRepo.EXPECT().
		FindByEmail(ctx, oauthUser.Email).
		Return(nil, repository.ErrUserNotFound)
	mocks.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, oauthUser.Email, user.Email)
			assert.Equal(t, string(plan.TierFree), user.Plan)
		}).
		Return(nil)
	mocks.authRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Authentication")).
		Return(nil)

	mocks.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"user"}).
		Return("access-token", "refresh-token", nil)
	mocks.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	mocks.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	mocks.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	loggedIn, tokens, err := userService.GoogleSignIn(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, oauthUser.Email, loggedIn.Email)
	assert.NotNil(t, tokens)
}

func TestUserService_GoogleSignIn_LinksByEmail(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), Email: "maria@example.com", Status: entity.UserStatusActive}
	oauthUser := &domainservice.OAuthUser{
		ID:       "google-sub-789",
		Email:    existing.Email,
		Name:     "Maria",
		Provider: "google",
	}

	mocks.googleAuthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewUserRepository().Return(mocks.userRepo)
	mocks.factory.EXPECT().NewAuthRepository().Return(mocks.authRepo)

	mocks.authRepo.EXPECT().
		FindByProviderUserID(ctx, "google", oauthUser.ID).
		Return(nil, repository.ErrAuthNotFound)
	mocks.userRepo.EXPECT().FindByEmail(ctx, existing.Email).Return(existing, nil)
	mocks.authRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(_ context.Context, auth *entity.Authentication) {
			assert.Equal(t, existing.ID, auth.UserID)
			assert.Equal(t, "google", auth.Provider)
		}).
		Return(nil)

	mocks.tokenService.EXPECT().
		GenerateTokens(existing.ID, []string{"user"}).
		Return("access-token", "refresh-token", nil)
	mocks.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	mocks.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	mocks.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Return(nil)

	loggedIn, _, err := userService.GoogleSignIn(ctx, "id-token")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, loggedIn.ID)
}

func TestUserService_GoogleSignIn_InvalidIDToken(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()

	mocks.googleAuthService.EXPECT().
		VerifyIDToken(ctx, "bad-token").
		Return(nil, errors.New("token expired"))

	user, tokens, err := userService.GoogleSignIn(ctx, "bad-token")
	assert.Nil(t, user)
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
}

func TestUserService_RefreshSession_RotatesToken(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	mocks.tokenService.EXPECT().
		ValidateToken("old-refresh", "refresh-secret").
		Return(refreshTokenFor(userID), nil)
	mocks.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("new-access", "new-refresh", nil)
	mocks.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")
	mocks.tokenService.EXPECT().HashToken("new-refresh").Return("new-hash")
	mocks.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewRefreshTokenRepository().Return(mocks.refreshTokenRepo)

	mocks.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "old-hash").Return(stored, nil)
	mocks.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, "old-hash").Return(nil)
	mocks.refreshTokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(_ context.Context, session *entity.RefreshToken) {
			assert.Equal(t, "new-hash", session.TokenHash)
			assert.Equal(t, userID, session.UserID)
		}).
		Return(nil)

	tokens, err := userService.RefreshSession(ctx, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", tokens.AccessToken)
	assert.Equal(t, "new-refresh", tokens.RefreshToken)
}

func TestUserService_RefreshSession_ExpiredSession(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	stored := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: "old-hash",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	mocks.tokenService.EXPECT().
		ValidateToken("old-refresh", "refresh-secret").
		Return(refreshTokenFor(userID), nil)
	mocks.tokenService.EXPECT().
		GenerateTokens(userID, []string{"user"}).
		Return("new-access", "new-refresh", nil)
	mocks.tokenService.EXPECT().HashToken("old-refresh").Return("old-hash")

	passthroughTx(mocks.txManager, mocks.factory)
	mocks.factory.EXPECT().NewRefreshTokenRepository().Return(mocks.refreshTokenRepo)

	mocks.refreshTokenRepo.EXPECT().FindByTokenHash(ctx, "old-hash").Return(stored, nil)

	tokens, err := userService.RefreshSession(ctx, "old-refresh")
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshSession_InvalidToken(t *testing.T) {
	userService, mocks := newUserService(t)

	mocks.tokenService.EXPECT().
		ValidateToken("garbage", "refresh-secret").
		Return(nil, errors.New("signature invalid"))

	tokens, err := userService.RefreshSession(context.Background(), "garbage")
	assert.Nil(t, tokens)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_DeletesSession(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.tokenService.EXPECT().
		ValidateToken("refresh-token", "refresh-secret").
		Return(refreshTokenFor(userID), nil)
	mocks.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	mocks.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, "refresh-hash").Return(nil)

	err := userService.Logout(ctx, "refresh-token")
	require.NoError(t, err)
}

func TestUserService_Logout_InvalidTokenStillDeletes(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()

	mocks.tokenService.EXPECT().
		ValidateToken("garbage", "refresh-secret").
		Return(nil, errors.New("signature invalid"))
	mocks.tokenService.EXPECT().HashToken("garbage").Return("garbage-hash")
	mocks.refreshTokenRepo.EXPECT().DeleteByTokenHash(ctx, "garbage-hash").Return(nil)

	err := userService.Logout(ctx, "garbage")
	require.NoError(t, err)
}

func TestUserService_GetProfile_AppliesDueDowngrade(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	due := time.Now().Add(-time.Hour)
	user := &entity.User{
		ID:                userID,
		Plan:              string(plan.TierStandard),
		NextMonthPlan:     string(plan.TierBasic),
		NextMonthPlanDate: &due,
	}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	passthroughTx(mocks.txManager, mocks.factory)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	planChangeRepo := mockRepo.NewMockPlanChangeRepository(t)
	mocks.factory.EXPECT().NewUserRepository().Return(txUserRepo)
	mocks.factory.EXPECT().NewPlanChangeRepository().Return(planChangeRepo)

	txUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	planChangeRepo.EXPECT().
		Record(ctx, mock.AnythingOfType("*entity.PlanChange")).
		Return(nil)

	profile, err := userService.GetProfile(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, string(plan.TierBasic), profile.Plan)
	assert.Empty(t, profile.NextMonthPlan)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	profile, err := userService.GetProfile(ctx, userID)
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Maria", Phone: "0917-000-0000"}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	updated, err := userService.UpdateProfile(ctx, userID, "", "0918-111-1111")
	require.NoError(t, err)
	assert.Equal(t, "Maria", updated.Name)
	assert.Equal(t, "0918-111-1111", updated.Phone)
}

func TestUserService_RegisterDevice_RequiresToken(t *testing.T) {
	userService, _ := newUserService(t)

	err := userService.RegisterDevice(context.Background(), uuid.New(), usecase.DeviceInfo{Platform: "android"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_RegisterDevice_Success(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	mocks.deviceRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Run(func(_ context.Context, device *entity.UserDevice) {
			assert.Equal(t, "fcm-token", device.FCMToken)
			assert.True(t, device.IsActive)
		}).
		Return(nil)

	err := userService.RegisterDevice(ctx, userID, usecase.DeviceInfo{
		FCMToken: "fcm-token",
		DeviceID: "device-1",
		Platform: "android",
	})
	require.NoError(t, err)
}

func TestUserService_SetSoundEnabled(t *testing.T) {
	userService, mocks := newUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, SoundEnabled: true}

	mocks.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mocks.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.False(t, updated.SoundEnabled)
		}).
		Return(nil)

	err := userService.SetSoundEnabled(ctx, userID, false)
	require.NoError(t, err)
}
