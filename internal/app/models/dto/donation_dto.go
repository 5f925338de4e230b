package dto

import (
	"github.com/shopspring/decimal"

	"github.com/alumniconnect/backend/internal/app/models"
)

// CreateDonationRequest carries a new donation. Amount is accepted as a JSON
// number or string and parsed into a decimal by the service.
type CreateDonationRequest struct {
	DonorName     string      `json:"donor_name" binding:"required"`
	Amount        interface{} `json:"amount"`
	Purpose       string      `json:"purpose"`
	DonorEmail    string      `json:"donor_email"`
	Currency      string      `json:"currency"`
	Message       string      `json:"message"`
	Anonymous     bool        `json:"anonymous"`
	PaymentMethod string      `json:"payment_method"`
	TransactionID string      `json:"transaction_id"`
}

// DonationFilter carries the list query parameters
type DonationFilter struct {
	Purpose string `form:"purpose"`
}

// DonationResponse wraps a single donation
type DonationResponse struct {
	Message  string           `json:"message,omitempty"`
	Donation *models.Donation `json:"donation"`
}

// DonationsListResponse wraps a filtered donation list. TotalAmount sums the
// amounts of the filtered records.
type DonationsListResponse struct {
	Donations   []models.Donation `json:"donations"`
	Total       int               `json:"total"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}
