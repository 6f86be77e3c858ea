package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Abaneee/social-pulse/cmd/api/auth"
	"github.com/Abaneee/social-pulse/cmd/api/handlers"
	"github.com/Abaneee/social-pulse/cmd/api/middleware"
	apiservices "github.com/Abaneee/social-pulse/cmd/api/services"
	_ "github.com/Abaneee/social-pulse/docs"
	"github.com/Abaneee/social-pulse/services"
)

func New(database *mongo.Database, jwtManager *auth.JWTManager, mediaRoot string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())
	r.MaxMultipartMemory = services.MaxUploadBytes

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := database.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authSvc := apiservices.NewAuthService(database, jwtManager)
	dataSvc := services.NewDatasetService(database, mediaRoot)
	analysisSvc := services.NewAnalysisService(database, dataSvc, mediaRoot)

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", handlers.RegisterHandler(authSvc))
		api.POST("/auth/login", handlers.LoginHandler(authSvc))
		api.POST("/auth/refresh", handlers.RefreshHandler(authSvc))

		authed := api.Group("", middleware.AuthRequired(authSvc))
		{
			authed.GET("/auth/user", handlers.CurrentUserHandler(authSvc))

			authed.POST("/upload", handlers.UploadDatasetHandler(dataSvc))
			authed.GET("/datasets", handlers.ListDatasetsHandler(dataSvc))
			authed.POST("/datasets/:id/activate", handlers.ActivateDatasetHandler(dataSvc))
			authed.DELETE("/datasets/:id", handlers.DeleteDatasetHandler(dataSvc))
			authed.POST("/process", handlers.ProcessDatasetHandler(dataSvc))

			authed.POST("/eda", handlers.EDAHandler(analysisSvc))
			authed.GET("/eda/history", handlers.EDAHistoryHandler(analysisSvc))
			authed.POST("/train", handlers.TrainHandler(analysisSvc))
			authed.GET("/models", handlers.ModelsHandler(analysisSvc))
			authed.POST("/predict/insights", handlers.InsightsHandler(analysisSvc))
			authed.GET("/dashboard", handlers.DashboardHandler(analysisSvc))
			authed.GET("/filters", handlers.FiltersHandler(analysisSvc))
		}
	}

	return r
}
