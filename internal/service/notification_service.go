package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/recruitment-service/internal/config"
	"github.com/spec-kit/recruitment-service/internal/events"
)

// NotificationService emits notifications for recruitment events. Email and
// webhook delivery are stubbed behind config; the handlers log structured
// records either way so the pipeline is observable in development.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventPassCreated, n.handlePassCreated)
	n.dispatcher.Subscribe(events.EventPassStageChanged, n.handlePassStageChanged)
	n.dispatcher.Subscribe(events.EventSlotsProvided, n.handleSlotsProvided)
	n.dispatcher.Subscribe(events.EventSlotBooked, n.handleSlotBooked)
	n.dispatcher.Subscribe(events.EventSlotReleased, n.handleSlotReleased)
}

func (n *NotificationService) handlePassCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("PassCreated", zap.String("pass_id", event.PassID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handlePassStageChanged(ctx context.Context, event events.Event) error {
	n.logger.Info("PassStageChanged", zap.String("pass_id", event.PassID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSlotsProvided(ctx context.Context, event events.Event) error {
	n.logger.Info("SlotsProvided", zap.String("pass_id", event.PassID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSlotBooked(ctx context.Context, event events.Event) error {
	n.logger.Info("SlotBooked", zap.String("pass_id", event.PassID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleSlotReleased(ctx context.Context, event events.Event) error {
	n.logger.Info("SlotReleased", zap.String("pass_id", event.PassID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("pass_id", event.PassID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("pass_id", event.PassID),
		zap.String("event_type", string(event.Type)))
}
