// Package widgets contains dumb render primitives for the plate keyboard.
//
// Allowed here:
// - row geometry (PlanRow), key caps, the plate field and the palette
// - stateless drawing/composition helpers (panes, stacks, popup overlay compositor, tables)
//
// Not allowed here:
// - key handling, session state transitions, or enable policy decisions
package widgets
