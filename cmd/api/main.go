package main

import (
	"log"
	"os"

	"DinoChatbot_CourseProject/internal/handler"
	"DinoChatbot_CourseProject/internal/middleware"
	"DinoChatbot_CourseProject/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "DinoChatbot_CourseProject/docs"
)

// @title			Dino Chatbot Data API
// @version		1.0
// @description	챗봇이 사용하는 공룡 참조 데이터 조회 및 도구 API
// @BasePath		/
func main() {
	// .env가 없어도 무시 (배포 환경은 환경 변수 직접 주입)
	if err := godotenv.Load(); err != nil {
		log.Println("main(): no .env file found, using environment variables")
	}

	dbPath := os.Getenv("DINO_DB_PATH")
	if dbPath == "" {
		dbPath = "./dino_name.db"
	}
	if err := storage.InitDB(dbPath); err != nil {
		log.Fatal("main(): ", err)
	}
	if err := storage.EnsureSchema(); err != nil {
		log.Fatal("main(): ", err)
	}

	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(config))
	router.Use(middleware.RequestIDMiddleware())

	router.GET("/health", handler.HealthCheck)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api").Use(middleware.RateLimitMiddleware())
	{
		api.GET("/dinosaurs", handler.GetDinos)
		api.GET("/dinosaurs/:id", handler.GetDinoByID)
		api.GET("/dinosaurs/:id/safety", handler.GetDinoSafety)
		api.GET("/transports/:date", handler.GetTransportsByDate)
		api.GET("/tools/convert", handler.ConvertTemperature)
		api.POST("/tools/safety-check", handler.CheckSafety)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Fatal(router.Run(":" + port))
}
