// Package scheduling holds the pure scheduling rules: business hours resolution,
// blackout rule matching, interval overlap, professional and room conflicts,
// slot generation and the appointment status machine.
//
// Nothing here performs I/O or reads the clock. Every instant that has to be
// interpreted as a clinic-local calendar date is converted with the
// *time.Location passed in by the caller.
package scheduling
