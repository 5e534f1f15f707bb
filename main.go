package main

import (
	"log"
	"net/http"

	"github.com/ConteoVivo/ActaMap/config"
	"github.com/ConteoVivo/ActaMap/models"
	"github.com/ConteoVivo/ActaMap/routers"
	"github.com/gin-gonic/gin"
)

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := config.FrontendURL
		if origin == "" {
			origin = "*"
		}
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func main() {
	models.InitDB()

	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/api/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Pong! Backend funcionando correctamente"})
	})

	routers.ApiRouters(r)

	log.Printf("Servidor backend corriendo en http://%s", config.MainRouter)
	if err := r.Run(config.MainRouter); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
