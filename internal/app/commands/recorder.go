// internal/app/commands/recorder.go
package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/events"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/ports/repository"
)

// Recorder is the single path commands use to emit audit events.
// The store append is part of the command's atomic unit; the sink
// publish is best-effort and never fails the command.
type Recorder struct {
	audits repository.AuditStore
	sink   events.Publisher // optional, may be nil
}

func NewRecorder(audits repository.AuditStore, sink events.Publisher) *Recorder {
	return &Recorder{audits: audits, sink: sink}
}

// Record appends the event and notifies the sink.
func (r *Recorder) Record(ctx context.Context, event *audit.Event) error {
	if err := r.audits.Append(ctx, event); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	r.publish(ctx, event)
	return nil
}

// RecordBestEffort is for events emitted outside a transaction, such as
// a blocked admin-safety attempt after its transaction rolled back.
// Failures are logged, never returned.
func (r *Recorder) RecordBestEffort(ctx context.Context, event *audit.Event) {
	if err := r.audits.Append(ctx, event); err != nil {
		log.Printf("audit append failed for %s: %v", event.Action, err)
	}
	r.publish(ctx, event)
}

func (r *Recorder) publish(ctx context.Context, event *audit.Event) {
	if r.sink == nil {
		return
	}
	key := event.Action
	if event.TargetID != nil {
		key = event.TargetID.String()
	}
	if err := r.sink.Publish(ctx, key, event); err != nil {
		log.Printf("audit sink publish failed for %s: %v", event.Action, err)
	}
}
