package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"estate/config"
	"estate/infras/kafka"
	"estate/infras/otel"
	"estate/shared/constant"
	"estate/shared/timezone"
	"fmt"
	"time"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	KindViewingRequested     = "viewing.requested"
	KindViewingUpdated       = "viewing.updated"
	KindViewingCancelled     = "viewing.cancelled"
	KindViewingConfirmed     = "viewing.confirmed"
	KindFollowUpScheduled    = "followup.scheduled"
	KindMaintenanceCompleted = "maintenance.completed"
)

const (
	DriverRedis = "redis"
	DriverKafka = "kafka"
)

const defaultChannel = "estate.notifications"

type Event struct {
	UserID     string    `json:"user_id"`
	Kind       string    `json:"kind"`
	Payload    any       `json:"payload"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier signals that a user should be told about something. Delivery is owned by
// another service; Notify never blocks and never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, userID, kind string, payload any)
}

type publisher interface {
	Publish(ctx context.Context, channel string, message any) *goRedis.IntCmd
}

type producer interface {
	SendMessages(ctx context.Context, topic string, messages ...kafka.Message) error
}

// notifierImpl publishes events on a redis channel, or on a kafka topic of the same name
// when the kafka driver is configured.
type notifierImpl struct {
	client   publisher
	producer producer
	driver   string
	channel  string
	enabled  bool
	otel     otel.Otel
}

func New(client *goRedis.Client, producer kafka.Client, cfg *config.Config, otel otel.Otel) Notifier {
	return newNotifier(client, producer, cfg, otel)
}

func newNotifier(client publisher, producer producer, cfg *config.Config, otel otel.Otel) *notifierImpl {
	channel := cfg.Notification.Channel
	if channel == constant.Empty {
		channel = defaultChannel
	}

	driver := cfg.Notification.Driver
	if driver != DriverKafka {
		driver = DriverRedis
	}

	return &notifierImpl{
		client:   client,
		producer: producer,
		driver:   driver,
		channel:  channel,
		enabled:  cfg.Notification.Enable,
		otel:     otel,
	}
}

func (n *notifierImpl) Notify(ctx context.Context, userID, kind string, payload any) {
	if !n.enabled || userID == constant.Empty {
		return
	}

	event := Event{
		UserID:     userID,
		Kind:       kind,
		Payload:    payload,
		OccurredAt: timezone.Now(),
	}

	go func() {
		if err := n.publish(context.WithoutCancel(ctx), event); err != nil {
			log.Error().Err(err).Str("kind", kind).Str("userID", userID).Msg("failed to publish notification")
		}
	}()
}

func (n *notifierImpl) publish(ctx context.Context, event Event) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Notify")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"notification.kind":   event.Kind,
		"notification.driver": n.driver,
	})

	if n.driver == DriverKafka {
		if err = n.producer.SendMessages(ctx, n.channel, kafka.Message{
			Key:     event.UserID,
			Value:   event,
			Headers: map[string]string{"kind": event.Kind},
		}); err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to publish notification: %w", err)
		}

		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	if err = n.client.Publish(ctx, n.channel, body).Err(); err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to publish notification: %w", err)
	}

	return nil
}
