// internal/ports/events/publisher.go
package events

import "context"

// Publisher is the optional audit/notification sink. The engine emits
// lifecycle events through it but never depends on the outcome; publish
// failures are logged and swallowed by the caller, not returned.
type Publisher interface {
	Publish(ctx context.Context, key string, event any) error
}
