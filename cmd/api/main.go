package main

import (
	_ "freight_quote/docs"
	"freight_quote/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Freight Quote Service API
// @version         1.0
// @description     Quote document generation, validation, export and draft quote requests.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
