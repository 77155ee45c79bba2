package main

import (
	_ "petromap/docs"
	"petromap/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Petrol Pump Review API
// @version         1.0
// @description     Admin review workflow for petrol pump registration requests backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
