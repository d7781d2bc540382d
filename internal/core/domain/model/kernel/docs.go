// Package kernel holds the primitives shared by the load and booking models:
//   - UUID: identifier value object whose zero value is invalid
//   - TransitionTable: the shared routine that validates status changes for
//     every state machine in the domain
//
// Both are immutable after construction and safe for concurrent use.
package kernel
