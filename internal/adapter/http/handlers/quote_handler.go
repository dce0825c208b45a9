package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "broker_quotes/internal/adapter/http/dto/request"
	response "broker_quotes/internal/adapter/http/dto/response"
	"broker_quotes/internal/usecase"
	"broker_quotes/pkg"
	logx "broker_quotes/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid quote request payload", http.StatusBadRequest)
)

// QuoteHandler exposes the aggregation engine to the dashboard and to the
// conversational agent. Both callers get the same result shape.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// RequestQuote godoc
// @Summary      Request a multi-insurer quote
// @Description  Fans the request out to every active connection of the broker that supports the product and returns the available results.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        broker_id  path      string                true  "Broker ID"
// @Param        request    body      request.QuoteRequest  true  "Quote request"
// @Success      201        {object}  response.RequestQuoteResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      401        {object}  pkg.HTTPError
// @Failure      403        {object}  pkg.HTTPError
// @Failure      500        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /brokers/{broker_id}/quotes [post]
func (h *QuoteHandler) RequestQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	out, err := h.usecase.RequestQuote(c.Request.Context(), usecase.RequestQuoteCommand{
		BrokerID:       c.Param("broker_id"),
		ConversationID: payload.ResolveConversationID(),
		ProductType:    payload.ProductType,
		CoverageTier:   payload.CoverageTier,
		InputData:      payload.ResolveInputData(),
	})
	if err != nil {
		appErr := mapQuoteError(err)
		logQuoteError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRequestQuote(out.Quote, out.Results, out.InsurersQueried, out.InsurersSucceeded))
}

// GetQuote godoc
// @Summary      Get a quote with every insurer line
// @Tags         quotes
// @Produce      json
// @Param        broker_id  path   string  true   "Broker ID"
// @Param        quote_id   path   string  true   "Quote ID"
// @Param        sort       query  string  false  "price orders available lines by ascending price"
// @Success      200        {object}  response.QuoteResponse
// @Failure      404        {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /brokers/{broker_id}/quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	details, err := h.usecase.GetQuote(c.Request.Context(), c.Param("broker_id"), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		logQuoteError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res := response.FromQuote(details.Quote, details.Lines)
	if strings.EqualFold(c.Query("sort"), "price") {
		response.SortByPrice(res.Lines)
	}
	c.JSON(http.StatusOK, res)
}

// ListQuotes godoc
// @Summary      List a broker's quotes
// @Tags         quotes
// @Produce      json
// @Param        broker_id        path   string  true   "Broker ID"
// @Param        conversation_id  query  string  false  "Only quotes requested from this conversation"
// @Success      200  {array}   response.QuoteResponse
// @Security     Bearer
// @Router       /brokers/{broker_id}/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context(), c.Param("broker_id"), c.Query("conversation_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		logQuoteError(c, appErr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductType):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_TYPE", "Unknown product type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBrokerID), errors.Is(err, usecase.ErrInvalidCoverageTier), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotePersistence):
		return pkg.NewDomainError("QUOTE_PERSISTENCE_FAILED", "Quote could not be stored", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func logQuoteError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus < http.StatusInternalServerError {
		return
	}
	logger := logx.Component("http.quotes")
	logger.Error().
		Err(appErr).
		Str("path", c.FullPath()).
		Str("broker_id", c.Param("broker_id")).
		Msg("quote request failed")
}
