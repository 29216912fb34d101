// internal/models/players.go
package models

// DateLayout is the ISO calendar-date layout used everywhere dates cross a
// boundary: fixture files, the availabilities table, and form input.
const DateLayout = "2006-01-02"

// PaymentStatus is the club-ledger state of a player's subscription.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
	PaymentUnknown PaymentStatus = "Unknown"
)

// ParsePaymentStatus maps a raw fixture or database value onto the enum.
// Anything unrecognized, including the empty string, becomes Unknown.
func ParsePaymentStatus(raw string) PaymentStatus {
	switch PaymentStatus(raw) {
	case PaymentPaid, PaymentPending, PaymentOverdue:
		return PaymentStatus(raw)
	default:
		return PaymentUnknown
	}
}

// Player is a roster entry as stored in the players table.
type Player struct {
	ID               string
	Name             string
	Grade            string
	AvailabilityNote string
	PaymentStatus    PaymentStatus
}
