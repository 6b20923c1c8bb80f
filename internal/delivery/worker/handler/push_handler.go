package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"pinesvet/config"
	deliverycontext "pinesvet/internal/delivery/context"
	"pinesvet/internal/domain/constants"
	"pinesvet/internal/domain/entity"
	"pinesvet/internal/domain/repository"
	"pinesvet/internal/domain/service"
	"pinesvet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes domain events pushed by Pub/Sub: it folds each event
// into the owning user's notification feed and fans it out to the user's
// registered devices over FCM.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	feedUC          usecase.NotificationUsecase
	notificationSvc service.NotificationService
	deviceRepo      repository.DeviceRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	FeedUC          usecase.NotificationUsecase
	NotificationSvc service.NotificationService `optional:"true"`
	DeviceRepo      repository.DeviceRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth only applies to Google-delivered messages outside development
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		feedUC:          params.FeedUC,
		notificationSvc: params.NotificationSvc,
		deviceRepo:      params.DeviceRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse domain event
	var event service.DomainEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse domain event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing domain event",
		slog.String("type", event.Type),
		slog.String("source_key", event.SourceKey),
		slog.String("user_id", event.UserID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process domain event",
			slog.String("source_key", event.SourceKey),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Domain event processed successfully",
		slog.String("source_key", event.SourceKey),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.DomainEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent folds the event into the feed and fans out the push.
// Events without a user (e.g. admin audit events) are acknowledged silently.
func (h *PushHandler) processEvent(ctx context.Context, event *service.DomainEvent) error {
	if event.UserID == "" {
		return nil
	}

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	if event.SourceKey == "" {
		return errors.New("domain event missing source key")
	}

	entry := &entity.FeedEntry{
		SourceKey: event.SourceKey,
		UserID:    userID,
		Source:    feedSourceFor(event.Type),
		Title:     event.Title,
		Body:      event.Body,
		Read:      false,
		Timestamp: event.OccurredAt,
	}

	// The feed upsert is keyed by source key, so redelivered messages
	// overwrite in place rather than duplicating entries.
	if err := h.feedUC.RecordEntry(ctx, entry); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return h.fanOutPush(ctx, userID, event)
}

// feedSourceFor maps an event type to the feed collection it belongs to.
func feedSourceFor(eventType string) entity.FeedSource {
	switch {
	case strings.HasPrefix(eventType, "appointment."):
		return entity.FeedSourceAppointment
	case strings.HasPrefix(eventType, "order."):
		return entity.FeedSourceOrder
	case strings.HasPrefix(eventType, "plan."):
		return entity.FeedSourceCarePlan
	default:
		return entity.FeedSourceAdmin
	}
}

// fanOutPush delivers the event to every active device of the user.
func (h *PushHandler) fanOutPush(ctx context.Context, userID uuid.UUID, event *service.DomainEvent) error {
	if h.notificationSvc == nil {
		return nil
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	devices, err := h.deviceRepo.FindByUser(ctx, userID)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		if device.IsActive {
			tokens = append(tokens, device.FCMToken)
		}
	}

	if len(tokens) == 0 {
		logger.Info("[Worker] No active devices for user",
			slog.String("user_id", userID.String()),
		)

		return nil
	}

	data := map[string]string{
		"type":       event.Type,
		"source_key": event.SourceKey,
	}
	for k, v := range event.Data {
		data[k] = v
	}

	sent, failed, invalidTokens, err := h.notificationSvc.SendBatchNotification(
		ctx, tokens, event.Title, event.Body, data,
	)
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	h.cleanupInvalidTokens(ctx, invalidTokens)

	logger.Info("[Worker] Push fan-out completed",
		slog.String("source_key", event.SourceKey),
		slog.Int("sent", sent),
		slog.Int("failed", failed),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)

	return nil
}

// cleanupInvalidTokens removes devices whose FCM tokens are no longer valid.
func (h *PushHandler) cleanupInvalidTokens(ctx context.Context, invalidTokens []string) {
	for _, token := range invalidTokens {
		if err := h.deviceRepo.DeleteByToken(ctx, token); err != nil {
			h.logger.Warn("[Worker] Failed to delete invalid device token",
				slog.Any("error", err),
			)
		}
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
