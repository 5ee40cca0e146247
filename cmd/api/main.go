package main

import (
	"log/slog"
	"os"

	_ "scale_workshop/docs"
	"scale_workshop/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Scale Workshop API
// @version         1.0
// @description     Service jobs of a weighing scale repair workshop, from intake to delivery, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := routes.Run(os.Getenv("CONFIG_FILE")); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
