package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/santamartha/hrportal/internal/app/models/dto"
	"github.com/santamartha/hrportal/internal/app/services"
	"github.com/santamartha/hrportal/internal/middleware"
	"github.com/santamartha/hrportal/internal/pkg/helpers"
)

// JobOfferController handles the job offer board
type JobOfferController struct {
	offerService services.JobOfferService
}

// NewJobOfferController creates a new JobOfferController
func NewJobOfferController(offerService services.JobOfferService) *JobOfferController {
	return &JobOfferController{offerService: offerService}
}

// CreateOffer handles job offer creation
// @Summary Create a job offer
// @Tags ofertas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JobOfferRequest true "Offer"
// @Success 201 {object} dto.JobOfferResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid offer data"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /ofertas [post]
func (c *JobOfferController) CreateOffer(ctx *gin.Context) {
	var req dto.JobOfferRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	offer, err := c.offerService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JobOfferResponse{Message: "Oferta creada exitosamente", Oferta: offer})
}

// GetOfferByID retrieves an offer
// @Summary Get a job offer
// @Tags ofertas
// @Produce json
// @Param id path int true "Offer ID"
// @Success 200 {object} models.JobOffer
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /ofertas/{id} [get]
func (c *JobOfferController) GetOfferByID(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	offer, err := c.offerService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, offer)
}

// GetAllOffers lists the board
// @Summary List job offers
// @Tags ofertas
// @Produce json
// @Success 200 {object} dto.JobOfferListResponse
// @Router /ofertas [get]
func (c *JobOfferController) GetAllOffers(ctx *gin.Context) {
	offers, err := c.offerService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobOfferListResponse{Ofertas: offers})
}

// UpdateOffer applies a partial update
// @Summary Update a job offer
// @Tags ofertas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Param request body dto.JobOfferUpdateRequest true "Fields to change"
// @Success 200 {object} dto.JobOfferResponse
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /ofertas/{id} [put]
func (c *JobOfferController) UpdateOffer(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.JobOfferUpdateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	offer, err := c.offerService.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobOfferResponse{Message: "Oferta actualizada", Oferta: offer})
}

// DeleteOffer deletes an offer and its applications
// @Summary Delete a job offer
// @Tags ofertas
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /ofertas/{id} [delete]
func (c *JobOfferController) DeleteOffer(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.offerService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Oferta eliminada"})
}
