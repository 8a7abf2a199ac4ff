package services

import "log"

// NotificationSink receives best-effort events emitted by the services.
// Delivery failures never affect the outcome of the triggering operation.
type NotificationSink interface {
	Emit(event string, payload interface{}) error
}

// emit delivers an event to the sink, swallowing any failure. A nil sink
// disables notifications (used in tests and when the broker is down).
func emit(sink NotificationSink, event string, payload interface{}) {
	if sink == nil {
		return
	}
	if err := sink.Emit(event, payload); err != nil {
		log.Printf("Warning: failed to emit %s event: %v", event, err)
	}
}
