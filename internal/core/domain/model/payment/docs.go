// Package payment contains the Payment entity and the mode-specific
// instrument validation that gates payment completion.
//
// A payment's amount is fixed when its shipment is created and never
// changes. Instrument details (card number, UPI id) are validated on
// Method construction and then discarded; only the chosen mode is ever
// persisted.
package payment
