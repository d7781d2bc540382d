// Package booking provides the Booking aggregate: a transporter's proposal for
// a load, and its Pending -> {Accepted, Rejected} state machine.
package booking
