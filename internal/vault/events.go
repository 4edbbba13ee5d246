package vault

import (
	"slices"

	"github.com/wheval/vault/common/logging"
	"github.com/wheval/vault/internal/types"
)

// EventSink receives notifications as they are emitted. Sinks are
// fire-and-forget: their return is not inspected and they must not be relied
// on for correctness.
type EventSink func(types.Event)

// SubscribeEvents installs a sink that observes every event emitted from now
// on. Passing nil removes the current sink.
func (v *Vault) SubscribeEvents(sink EventSink) {
	v.sink = sink
}

// Events returns a copy of all events emitted so far, in emission order.
func (v *Vault) Events() []types.Event {
	return slices.Clone(v.events)
}

func (v *Vault) emit(event types.Event) {
	v.logger.Debug().
		Stringer(logging.FieldEventKind, event.Kind).
		Stringer(logging.FieldAccount, event.Account).
		Stringer(logging.FieldAmount, event.Amount).
		Msg("event emitted")
	v.events = append(v.events, event)
	if v.sink != nil {
		v.sink(event)
	}
}
