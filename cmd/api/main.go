package main

import (
	_ "akc_operations/docs"
	"akc_operations/internal/adapter/http/routes"
	"akc_operations/internal/config"
	"akc_operations/internal/logging"

	_ "github.com/joho/godotenv/autoload"
)

// @title           AKC Operations API
// @version         1.0
// @description     Projects, estimates, customers and field submissions for a construction contractor, stored in sheet-shaped tables.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.MustLoad()
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	routes.Run(cfg)
}
