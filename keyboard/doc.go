// Package keyboard decides what a license plate keyboard shows.
//
// SelectLayout picks the four rows of keys for the next character, and a Policy
// decides which of those keys are enabled. Both are pure functions of the entered
// length, the plate type and the "more" toggle, so they are safe to call from any
// goroutine and are recomputed after every keystroke.
//
// Allowed here:
// - key classification, layout tables and enable policies
//
// Not allowed here:
// - text mutation (see package input) or rendering (see package widgets)
package keyboard
