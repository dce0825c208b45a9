package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathBrokers     = "/brokers/:broker_id"
	PathQuotes      = "/quotes"
	PathConnections = "/connections"
	PathRateTables  = "/rate-tables"
)

func addBrokerRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, h handlerSet) {
	broker := rg.Group(PathBrokers, auth)

	quotes := broker.Group(PathQuotes)
	{
		quotes.POST("", h.quotes.RequestQuote)
		quotes.GET("", h.quotes.ListQuotes)
		quotes.GET("/:quote_id", h.quotes.GetQuote)
	}

	connections := broker.Group(PathConnections)
	{
		connections.POST("", h.connections.Connect)
		connections.GET("", h.connections.ListConnections)
		connections.PATCH("/:connection_id/deactivate", h.connections.Deactivate)
	}

	rateTables := broker.Group(PathRateTables)
	{
		rateTables.PUT("/:insurer_slug/:product_type", h.rateTables.Upload)
		rateTables.GET("/:insurer_slug/:product_type", h.rateTables.List)
	}
}
