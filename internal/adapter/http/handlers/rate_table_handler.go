package handlers

import (
	"errors"
	"net/http"

	request "broker_quotes/internal/adapter/http/dto/request"
	response "broker_quotes/internal/adapter/http/dto/response"
	"broker_quotes/internal/usecase"
	"broker_quotes/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRateTablePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid rate table payload", http.StatusBadRequest)
)

type RateTableHandler struct {
	usecase usecase.IRateTableUseCase
}

func NewRateTableHandler(uc usecase.IRateTableUseCase) *RateTableHandler {
	return &RateTableHandler{usecase: uc}
}

// Upload replaces the tariff table of one insurer and product.
func (h *RateTableHandler) Upload(c *gin.Context) {
	var payload request.RateTableRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRateTablePayload.HTTPStatus, errInvalidRateTablePayload.ToHTTPError())
		return
	}
	if err := payload.Validate(); err != nil {
		c.JSON(errInvalidRateTablePayload.HTTPStatus, errInvalidRateTablePayload.ToHTTPError())
		return
	}

	inputs := make([]usecase.RateRowInput, 0, len(payload.Rows))
	for _, r := range payload.Rows {
		inputs = append(inputs, usecase.RateRowInput{
			CoverageTier: r.CoverageTier,
			Factors:      r.Factors,
			Price:        *r.Price,
			Currency:     r.Currency,
			Deductible:   r.Deductible,
			Coverage:     r.Coverage,
		})
	}

	brokerID, slug, product := c.Param("broker_id"), c.Param("insurer_slug"), c.Param("product_type")
	rows, err := h.usecase.Upload(c.Request.Context(), brokerID, slug, product, inputs)
	if err != nil {
		appErr := mapRateTableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateTable(brokerID, slug, product, rows))
}

func (h *RateTableHandler) List(c *gin.Context) {
	brokerID, slug, product := c.Param("broker_id"), c.Param("insurer_slug"), c.Param("product_type")
	rows, err := h.usecase.List(c.Request.Context(), brokerID, slug, product)
	if err != nil {
		appErr := mapRateTableError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromRateTable(brokerID, slug, product, rows))
}

func mapRateTableError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductType):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_TYPE", "Unknown product type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRateRow):
		return pkg.NewDomainError("INVALID_RATE_ROW", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBrokerID), errors.Is(err, usecase.ErrInvalidInsurerSlug):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
