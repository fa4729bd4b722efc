// Package core contains front-end contracts shared by the keyboard screens.
//
// Allowed here:
// - key and action registries, message contracts
// - shared state machines used across screens (for example picker logic)
// - header, status and footer bars
//
// Not allowed here:
// - plate rules or layout selection
// - low-level widget rendering primitives
package core
