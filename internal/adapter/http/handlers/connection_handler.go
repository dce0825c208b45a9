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
	errInvalidConnectionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid connection payload", http.StatusBadRequest)
)

// ConnectionHandler handles operator configuration of insurer connections.

type ConnectionHandler struct {
	usecase usecase.IInsurerConnectionUseCase
}

func NewConnectionHandler(uc usecase.IInsurerConnectionUseCase) *ConnectionHandler {
	return &ConnectionHandler{usecase: uc}
}

func (h *ConnectionHandler) Connect(c *gin.Context) {
	var payload request.ConnectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConnectionPayload.HTTPStatus, errInvalidConnectionPayload.ToHTTPError())
		return
	}

	conn, err := h.usecase.Connect(c.Request.Context(), usecase.ConnectInsurerCommand{
		BrokerID:          c.Param("broker_id"),
		InsurerName:       payload.InsurerName,
		InsurerSlug:       payload.InsurerSlug,
		AdapterType:       payload.AdapterType,
		SupportedProducts: payload.SupportedProducts,
		Credentials:       payload.Credentials,
	})
	if err != nil {
		appErr := mapConnectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromConnection(conn))
}

func (h *ConnectionHandler) ListConnections(c *gin.Context) {
	conns, err := h.usecase.ListByBroker(c.Request.Context(), c.Param("broker_id"))
	if err != nil {
		appErr := mapConnectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConnections(conns))
}

func (h *ConnectionHandler) Deactivate(c *gin.Context) {
	conn, err := h.usecase.Deactivate(c.Request.Context(), c.Param("broker_id"), c.Param("connection_id"))
	if err != nil {
		appErr := mapConnectionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromConnection(conn))
}

func mapConnectionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductType):
		return pkg.NewDomainErrorSimple("INVALID_PRODUCT_TYPE", "Unknown product type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBrokerID),
		errors.Is(err, usecase.ErrInvalidConnectionID),
		errors.Is(err, usecase.ErrInvalidInsurerName),
		errors.Is(err, usecase.ErrInvalidInsurerSlug),
		errors.Is(err, usecase.ErrInvalidSupportedProds):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConnectionNotFound):
		return pkg.NewDomainErrorSimple("CONNECTION_NOT_FOUND", "Insurer connection not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
