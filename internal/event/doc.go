// Package event provides the synchronous, priority-ordered listener chains
// that carry editor events between components.
//
// Every observable thing in the editor (a key press on the view document, a
// model change block finishing, a view selection being recomputed, the
// editing controller converting a selection) is an Emitter. Components
// attach listeners with a priority tier and may stop propagation so that
// listeners in later tiers never see the event.
//
// # Priority Ordering
//
// Listeners execute in priority order, lower values first:
//
//   - Highest (0): reserved for engine internals that must see events first
//   - High (100): features that intercept before default handling (widget keys)
//   - Normal (200): default behavior - default priority
//   - Low (300): post-processing (widget selection rendering)
//   - Lowest (400): diagnostics
//
// Within a tier, listeners run in registration order.
//
// # Basic Usage
//
//	keydown := event.NewEmitter[*KeyEventData]("keydown")
//
//	sub := keydown.On(func(info *event.Info, data *KeyEventData) {
//	    if handled(data) {
//	        info.Stop()
//	    }
//	}, event.WithPriority(event.PriorityHigh))
//	defer sub.Cancel()
//
//	info := keydown.Fire(data)
//	if info.IsStopped() {
//	    // a listener consumed the event
//	}
//
// # Threading
//
// Delivery is synchronous: Fire returns after every listener has run on the
// calling goroutine. Listeners may attach or cancel subscriptions, or fire
// other emitters, while an event is being delivered; the listener list is
// snapshotted before delivery starts.
package event
