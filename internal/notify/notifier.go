package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Severity of a toast event.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

const channelPrefix = "notify:" // Per-user channel: notify:{user_id}

// Event is one transient toast shown to the user.
type Event struct {
	Severity  Severity  `json:"severity"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Notifier publishes toast events to a per-user Redis channel. Publishing is
// fire-and-forget: failures are logged and dropped, never propagated.
type Notifier struct {
	client *redis.Client
}

func NewNotifier(client *redis.Client) *Notifier {
	return &Notifier{client: client}
}

func channelFor(userID uuid.UUID) string {
	return channelPrefix + userID.String()
}

func (n *Notifier) Success(ctx context.Context, userID uuid.UUID, message string) {
	n.publish(ctx, userID, Event{Severity: SeveritySuccess, Message: message, CreatedAt: time.Now()})
}

func (n *Notifier) Error(ctx context.Context, userID uuid.UUID, message string) {
	n.publish(ctx, userID, Event{Severity: SeverityError, Message: message, CreatedAt: time.Now()})
}

func (n *Notifier) publish(ctx context.Context, userID uuid.UUID, event Event) {
	if userID == uuid.Nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("notification marshal failed: %v", err)
		return
	}

	if err := n.client.Publish(ctx, channelFor(userID), data).Err(); err != nil {
		log.Printf("notification publish failed: %v", err)
	}
}

// Subscribe opens the user's notification channel. The caller owns the
// returned subscription and must close it.
func (n *Notifier) Subscribe(ctx context.Context, userID uuid.UUID) *redis.PubSub {
	return n.client.Subscribe(ctx, channelFor(userID))
}
