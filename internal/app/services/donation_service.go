package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alumniconnect/backend/internal/app/models"
	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/repositories"
	"github.com/alumniconnect/backend/internal/pkg/apperrors"
)

// DonationService handles donation recording and reporting
type DonationService struct {
	donationRepo *repositories.DonationRepository
}

// NewDonationService creates a new donation service instance
func NewDonationService(donationRepo *repositories.DonationRepository) *DonationService {
	return &DonationService{
		donationRepo: donationRepo,
	}
}

// CreateDonation records a new donation. The amount may arrive as a JSON
// number or a numeric string; presence is checked before purpose so that a
// missing amount wins, then format, then positivity.
func (s *DonationService) CreateDonation(ctx context.Context, req *dto.CreateDonationRequest) (*models.Donation, error) {
	if amountMissing(req.Amount) {
		return nil, apperrors.NewValidationError("amount is required")
	}
	if req.Purpose == "" {
		return nil, apperrors.NewValidationError("purpose is required")
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, apperrors.NewValidationError("Invalid amount format")
	}
	if !amount.IsPositive() {
		return nil, apperrors.NewValidationError("Amount must be greater than 0")
	}

	currency := req.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	donation := s.donationRepo.Create(ctx, models.Donation{
		DonorName:     req.DonorName,
		DonorEmail:    req.DonorEmail,
		Amount:        amount,
		Currency:      currency,
		Purpose:       req.Purpose,
		Message:       req.Message,
		Anonymous:     req.Anonymous,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Status:        models.DonationStatusCompleted,
	})

	return &donation, nil
}

// ListDonations returns the filtered donations with anonymous donors
// redacted, plus the sum of their amounts.
func (s *DonationService) ListDonations(ctx context.Context, filter dto.DonationFilter) ([]models.Donation, decimal.Decimal) {
	donations := s.donationRepo.List(ctx, repositories.DonationListFilter{
		Purpose: filter.Purpose,
	})

	total := decimal.Zero
	redacted := make([]models.Donation, 0, len(donations))
	for _, d := range donations {
		total = total.Add(d.Amount)
		redacted = append(redacted, d.Redacted())
	}

	return redacted, total
}

// GetDonationByID retrieves a donation by id. The record is returned as
// stored, without anonymity redaction.
func (s *DonationService) GetDonationByID(ctx context.Context, id int64) (*models.Donation, error) {
	donation, ok := s.donationRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperrors.NewNotFoundError("Donation not found")
	}
	return &donation, nil
}

// amountMissing reports whether the amount field was absent or empty.
// A numeric zero counts as missing, matching the presence check; the
// positivity check below never sees it.
func amountMissing(amount interface{}) bool {
	switch v := amount.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return v == 0
	default:
		return false
	}
}

func parseAmount(amount interface{}) (decimal.Decimal, error) {
	switch v := amount.(type) {
	case string:
		return decimal.NewFromString(strings.TrimSpace(v))
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Decimal{}, &apperrors.CustomError{
			Err:     apperrors.ErrValidationFailed,
			Message: "Invalid amount format",
		}
	}
}
