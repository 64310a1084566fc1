package events

import "context"

// Event types
const (
	EventNotificationCreated  = "notification_created"
	EventRequestStatusChanged = "request_status_changed"
)

// StreamAdmin carries events for the admin live feed.
const StreamAdmin = "events:admin"

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
