package main

import (
	_ "broker_quotes/docs"
	"broker_quotes/internal/adapter/http/routes"
	"broker_quotes/internal/infrastructure/database"
	"broker_quotes/internal/usecase"
	configx "broker_quotes/pkg/config"
	logx "broker_quotes/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Broker Quotes API
// @version         1.0
// @description     Multi-insurer quote aggregation for brokerages. One request fans out to every connected insurer and returns the comparable results.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))

	routes.Run(routes.Options{
		Server:      *configx.MustNew[routes.ServerConfig](""),
		Aggregation: *configx.MustNew[usecase.AggregationConfig](""),
		DynamoDB:    *configx.MustNew[database.DynamoDBConfig](""),
		Postgres:    *configx.MustNew[database.PostgresConfig](""),
	})
}
