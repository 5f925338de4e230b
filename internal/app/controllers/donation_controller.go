package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/app/models/dto"
	"github.com/alumniconnect/backend/internal/app/services"
	"github.com/alumniconnect/backend/internal/middleware"
)

// DonationController handles donation endpoints. Donations cannot be updated
// or deleted once recorded.
type DonationController struct {
	donationService *services.DonationService
}

// NewDonationController creates a new DonationController
func NewDonationController(donationService *services.DonationService) *DonationController {
	return &DonationController{
		donationService: donationService,
	}
}

// ListDonations handles GET /api/donations with an optional purpose filter.
// Anonymous donors are redacted in this listing.
func (c *DonationController) ListDonations(ctx *gin.Context) {
	var filter dto.DonationFilter
	_ = ctx.ShouldBindQuery(&filter)

	donations, totalAmount := c.donationService.ListDonations(ctx.Request.Context(), filter)

	ctx.JSON(http.StatusOK, dto.DonationsListResponse{
		Donations:   donations,
		Total:       len(donations),
		TotalAmount: totalAmount,
	})
}

// CreateDonation handles POST /api/donations
func (c *DonationController) CreateDonation(ctx *gin.Context) {
	var req dto.CreateDonationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	donation, err := c.donationService.CreateDonation(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.DonationResponse{
		Message:  "Donation recorded successfully",
		Donation: donation,
	})
}

// GetDonation handles GET /api/donations/:id
func (c *DonationController) GetDonation(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	donation, err := c.donationService.GetDonationByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DonationResponse{Donation: donation})
}
