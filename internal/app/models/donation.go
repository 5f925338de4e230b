package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Donation statuses
const (
	DonationStatusCompleted = "completed"
)

// DefaultCurrency is used when a donation does not specify one.
const DefaultCurrency = "INR"

// AnonymousDonorName replaces the donor name in redacted responses.
const AnonymousDonorName = "Anonymous"

func init() {
	// Amounts serialize as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Donation defines a recorded donation
type Donation struct {
	ID            int64           `json:"id" example:"1"`
	DonorName     string          `json:"donor_name" example:"Jane Doe"`
	DonorEmail    string          `json:"donor_email"`
	Amount        decimal.Decimal `json:"amount" example:"100"`
	Currency      string          `json:"currency" example:"INR"`
	Purpose       string          `json:"purpose" example:"library"`
	Message       string          `json:"message"`
	Anonymous     bool            `json:"anonymous"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
	Status        string          `json:"status" example:"completed"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Redacted returns a copy with the donor identity hidden when the donation
// is anonymous. The stored record is never altered.
func (d Donation) Redacted() Donation {
	if !d.Anonymous {
		return d
	}
	d.DonorName = AnonymousDonorName
	d.DonorEmail = ""
	return d
}
