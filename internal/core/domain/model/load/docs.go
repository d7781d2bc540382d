// Package load provides the Load aggregate: a freight shipment posted by a
// shipper and the state machine that governs it.
//
// The package includes:
//   - Load: aggregate root with identity, facility window, cargo details and status
//   - Facility: loading/unloading points and times, validated as a range
//   - Status: Posted, Booked, Cancelled and their transition table
//
// Key business rules:
//   - Loads are created Posted
//   - Posted -> {Booked, Cancelled}; Booked -> {Posted, Cancelled}; Cancelled is terminal
//   - Only Posted loads may be edited; Booked loads may not be deleted
//   - The loading time never follows the unloading time
//
// The Load side knows nothing about bookings. Booking code drives the load
// status through TransitionTo, which consults the same table as every other caller.
package load
