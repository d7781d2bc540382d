// Package services provides domain services whose rules span a load and
// several of its bookings.
//
// The package includes:
//   - BookingArbiter: admits proposals and picks the single accepted booking of a load
//   - ReversionPolicy: decides when a Booked load reverts to Posted
//
// Both are stateless and operate on aggregates loaded by the caller inside one
// transaction. Neither changes a load's status: callers apply the outcome
// through the load transition table.
package services
