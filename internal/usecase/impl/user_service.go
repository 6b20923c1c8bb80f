// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"pinesvet/config"
	deliverycontext "pinesvet/internal/delivery/context"
	"pinesvet/internal/domain/entity"
	domainerrors "pinesvet/internal/domain/errors"
	"pinesvet/internal/domain/plan"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/domain/service"
	"pinesvet/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// providerEmail is the credential provider name for email/password logins.
const providerEmail = "email"

// roleCustomer is the single role carried on customer access tokens.
const roleCustomer = "user"

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	deviceRepo        repository.DeviceRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	refreshSecret     string
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	DeviceRepo        repository.DeviceRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	refreshSecret := ""
	if params.Config != nil {
		refreshSecret = params.Config.SecretKey.Refresh
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		deviceRepo:        params.DeviceRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		refreshSecret:     refreshSecret,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new customer account with email/password credentials.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, findErr := authRepo.FindByProviderUserID(ctx, providerEmail, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email credential already registered")
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		newUser := buildNewCustomer(input.Name, input.Email, input.Phone)
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			return errors.Wrap(createErr, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			UserID:         newUser.ID,
			Provider:       providerEmail,
			ProviderUserID: input.Email,
			PasswordHash:   hashedPassword,
		}
		if createErr := authRepo.Create(ctx, newAuth); createErr != nil {
			return errors.Wrap(createErr, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return registeredUser, nil
}

// Login verifies email/password credentials and opens a session.
func (srv *userService) Login(ctx context.Context, email, password string) (*entity.User, *usecase.AuthTokens, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindByProviderUserID(ctx, providerEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, nil, errors.Wrap(err, "failed to find authentication")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	loggedInUser, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find user by id")
	}
	if loggedInUser.Status == entity.UserStatusInactive {
		return nil, nil, domainerrors.ErrForbidden.WrapMessage("account is deactivated")
	}

	tokens, err := srv.openSession(ctx, loggedInUser.ID)
	if err != nil {
		return nil, nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", loggedInUser.ID))

	return loggedInUser, tokens, nil
}

// GoogleSignIn verifies a Google ID token, creating the account on first
// sign-in, and opens a session.
func (srv *userService) GoogleSignIn(ctx context.Context, idToken string) (*entity.User, *usecase.AuthTokens, error) {
	srv.log(ctx).Info("Handling Google sign-in")

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, findErr := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if findErr != nil {
			return findErr
		}
		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute Google sign-in transaction", slog.Any("error", err))

		return nil, nil, err
	}

	if loggedInUser.Status == entity.UserStatusInactive {
		return nil, nil, domainerrors.ErrForbidden.WrapMessage("account is deactivated")
	}

	tokens, err := srv.openSession(ctx, loggedInUser.ID)
	if err != nil {
		return nil, nil, err
	}

	return loggedInUser, tokens, nil
}

// findOrCreateGoogleUser resolves the Google subject to an account, linking
// the credential to an existing account with the same email when possible.
func (srv *userService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	userRepo := repoFactory.NewUserRepository()
	authRepo := repoFactory.NewAuthRepository()

	authRecord, err := authRepo.FindByProviderUserID(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		user, findErr := userRepo.FindByID(ctx, authRecord.UserID)
		if findErr != nil {
			return nil, errors.Wrap(findErr, "failed to find user for google auth")
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find google authentication")
	}

	// First sign-in with this Google account. Attach to an existing account
	// with the same email, or create a fresh one.
	user, err := userRepo.FindByEmail(ctx, oauthUser.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Creating account from Google sign-in", slog.String("email", oauthUser.Email))

		user = buildNewCustomer(oauthUser.Name, oauthUser.Email, "")
		if createErr := userRepo.Create(ctx, user); createErr != nil {
			return nil, errors.Wrap(createErr, "failed to create user for google auth")
		}
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email for google auth")
	}

	newAuth := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         user.ID,
		Provider:       oauthUser.Provider,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.Create(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create google authentication")
	}

	return user, nil
}

// RefreshSession exchanges a valid refresh token for a fresh token pair.
// The old session row is replaced so a stolen token cannot be replayed.
func (srv *userService) RefreshSession(ctx context.Context, refreshToken string) (*usecase.AuthTokens, error) {
	token, err := srv.tokenService.ValidateToken(refreshToken, srv.refreshSecret)
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token validation failed")
	}

	userID, err := subjectFromToken(token)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(userID, []string{roleCustomer})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	oldHash := srv.tokenService.HashToken(refreshToken)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, findErr := refreshRepo.FindByTokenHash(ctx, oldHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session not found")
			}

			return errors.Wrap(findErr, "failed to find refresh token")
		}
		if stored.ExpiresAt.Before(time.Now()) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("session expired")
		}

		if delErr := refreshRepo.DeleteByTokenHash(ctx, oldHash); delErr != nil {
			return errors.Wrap(delErr, "failed to rotate refresh token")
		}

		newSession := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    stored.UserID,
			TokenHash: srv.tokenService.HashToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}

		return errors.Wrap(refreshRepo.Create(ctx, newSession), "failed to store refresh token")
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh session", slog.Any("error", err))

		return nil, err
	}

	return &usecase.AuthTokens{AccessToken: accessToken, RefreshToken: newRefreshToken}, nil
}

// Logout revokes the session holding the given refresh token.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	if _, err := srv.tokenService.ValidateToken(refreshToken, srv.refreshSecret); err != nil {
		// Even if the token is invalid, proceed to delete it from the database.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)
	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}
	srv.log(ctx).Info("Logged out")

	return nil
}

// GetProfile retrieves a customer's account, applying any deferred care-plan
// downgrade that has come due.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if downgradeDue(user, time.Now()) {
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			return applyDueDowngrade(ctx, repoFactory, user, time.Now())
		}); err != nil {
			return nil, errors.Wrap(err, "failed to apply scheduled downgrade")
		}
	}

	return user, nil
}

// UpdateProfile updates the customer's editable account fields.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, phone string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile update failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	if name != "" {
		user.Name = name
	}
	if phone != "" {
		user.Phone = phone
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// RegisterDevice stores a push notification token for the user.
func (srv *userService) RegisterDevice(ctx context.Context, userID uuid.UUID, device usecase.DeviceInfo) error {
	if device.FCMToken == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("fcm token is required")
	}

	record := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: device.FCMToken,
		DeviceID: device.DeviceID,
		Platform: device.Platform,
		IsActive: true,
	}
	if err := srv.deviceRepo.Upsert(ctx, record); err != nil {
		return errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Debug("Registered device", slog.Any("userID", userID), slog.String("platform", device.Platform))

	return nil
}

// SetSoundEnabled toggles the notification sound preference.
func (srv *userService) SetSoundEnabled(ctx context.Context, userID uuid.UUID, enabled bool) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("sound preference update failed")
		}

		return errors.Wrap(err, "failed to find user by id")
	}

	user.SoundEnabled = enabled

	return errors.Wrap(srv.userRepo.Update(ctx, user), "failed to update user")
}

// openSession generates a token pair and persists the refresh half.
func (srv *userService) openSession(ctx context.Context, userID uuid.UUID) (*usecase.AuthTokens, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(userID, []string{roleCustomer})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	session := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := srv.refreshTokenRepo.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// buildNewCustomer creates a fresh account on the free tier with sound on.
func buildNewCustomer(name, email, phone string) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Phone:        phone,
		Status:       entity.UserStatusActive,
		Plan:         string(plan.TierFree),
		SoundEnabled: true,
	}
}

// subjectFromToken extracts the user ID from a parsed token's "sub" claim.
func subjectFromToken(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected claims type")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid sub claim")
	}

	return userID, nil
}
