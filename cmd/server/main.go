package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/biniyam-ayele29/savor-admin/internal/api"
	"github.com/biniyam-ayele29/savor-admin/internal/db"
	"github.com/biniyam-ayele29/savor-admin/internal/logging"
	"github.com/biniyam-ayele29/savor-admin/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.SetOutput(os.Stdout)
	log.Printf("Savour Admin Service starting (GIT_SHA=%s BUILD_TIME=%s)", os.Getenv("GIT_SHA"), os.Getenv("BUILD_TIME"))

	// Database init is non-fatal so /live answers while the DB warms up
	database, err := db.NewDatabase()
	if err != nil {
		log.Printf("[WARN] Database initialization failed at startup: %v", err)
	}
	if database != nil {
		defer database.Close()
	}

	uploader, err := storage.NewUploader(context.Background())
	if err != nil {
		log.Printf("[WARN] S3 uploader unavailable, uploads fall back to local disk: %v", err)
	}

	handler := api.NewHandler(database, uploader)
	router := setupRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	go func() {
		log.Printf("Starting server on port %s", port)
		if err := router.Run(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

func setupRouter(handler *api.Handler) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(logging.JSONLogger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
	}))

	// Locally stored uploads for development
	router.Static("/uploads", "./uploads")

	router.GET("/live", func(c *gin.Context) { c.Status(200) })
	router.GET("/ready", handler.Health)
	router.GET("/health", handler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", handler.Login)

		// Everything past login needs a valid token and an admin role
		authed := v1.Group("")
		authed.Use(api.AuthMiddleware(), api.AdminMiddleware())
		{
			authed.GET("/auth/profile", handler.GetProfile)
			authed.GET("/navigation", handler.GetNavigation)

			// Companies: reads for both roles, writes super_admin only
			authed.GET("/companies", handler.GetCompanies)
			authed.GET("/companies/:id", handler.GetCompany)

			authed.GET("/employees", handler.GetEmployees)
			authed.POST("/employees", handler.CreateEmployee)
			authed.PUT("/employees/:id", handler.UpdateEmployee)
			authed.DELETE("/employees/:id", handler.DeleteEmployee)

			authed.GET("/waiting-staff", handler.GetWaitingStaff)
			authed.POST("/waiting-staff", handler.CreateWaitingStaff)
			authed.PUT("/waiting-staff/:id", handler.UpdateWaitingStaff)
			authed.DELETE("/waiting-staff/:id", handler.DeleteWaitingStaff)

			authed.GET("/menu-items", handler.GetMenuItems)
			authed.POST("/menu-items", handler.CreateMenuItem)
			authed.PUT("/menu-items/:id", handler.UpdateMenuItem)
			authed.PATCH("/menu-items/:id/availability", handler.SetMenuItemAvailability)
			authed.DELETE("/menu-items/:id", handler.DeleteMenuItem)

			authed.GET("/orders", handler.GetOrders)
			authed.GET("/orders/support-data", handler.GetOrderSupportData)
			authed.GET("/orders/:id", handler.GetOrder)
			authed.PATCH("/orders/:id/status", handler.UpdateOrderStatus)
			authed.PATCH("/orders/:id/assign", handler.AssignWaitingStaff)
			authed.DELETE("/orders/:id", handler.DeleteOrder)

			authed.POST("/uploads", handler.UploadImage)

			super := authed.Group("")
			super.Use(api.SuperAdminMiddleware())
			{
				super.POST("/companies", handler.CreateCompany)
				super.PUT("/companies/:id", handler.UpdateCompany)
				super.DELETE("/companies/:id", handler.DeleteCompany)

				// Privileged procedures: admin provisioning per company
				super.GET("/companies/:id/admins", handler.GetCompanyAdmins)
				super.POST("/companies/:id/admins", handler.CreateCompanyAdmin)
				super.DELETE("/companies/:id/admins/:user_id", handler.RemoveCompanyAdmin)
			}
		}
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "savour-admin",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	return router
}
