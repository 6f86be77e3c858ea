package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abaneee/social-pulse/cmd/api/dto"
	"github.com/Abaneee/social-pulse/cmd/api/middleware"
	"github.com/Abaneee/social-pulse/internal/logger"
	"github.com/Abaneee/social-pulse/mlengine"
	"github.com/Abaneee/social-pulse/services"
)

// EDAHandler godoc
// @Summary      Profile the active dataset
// @Description  Generates a column-by-column profiling report and appends it to the dataset's EDA history.
// @Tags         analysis
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.EDAResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /eda [post]
func EDAHandler(analysisSvc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := analysisSvc.EDA(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, services.ErrNoActiveDataset) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset."})
				return
			}
			logger.Log.Errorf("eda failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "EDA generation failed: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.EDAResponseDTO{EDA: dto.NewEDAHistoryDTO(history)})
	}
}

// EDAHistoryHandler godoc
// @Summary      List stored profiling reports
// @Description  Returns the active dataset's EDA reports, newest first.
// @Tags         analysis
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.EDAHistoryListResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /eda/history [get]
func EDAHistoryHandler(analysisSvc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		histories, err := analysisSvc.EDAHistories(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, services.ErrNoActiveDataset) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset."})
				return
			}
			logger.Log.Errorf("eda history failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Failed to list EDA history."})
			return
		}

		c.JSON(http.StatusOK, dto.EDAHistoryListResponseDTO{History: dto.NewEDAHistoryDTOs(histories)})
	}
}

// TrainHandler godoc
// @Summary      Train models on the active dataset
// @Description  Fits the engagement rate regressor, the engagement category classifier or both, and stores the model artifacts for later predictions.
// @Tags         analysis
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.TrainRequestDTO  false  "model selection"
// @Success      200   {object}  dto.TrainResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /train [post]
func TrainHandler(analysisSvc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TrainRequestDTO
		if err := bindJSONAllowEmpty(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid request body."})
			return
		}
		if req.ModelType == "" {
			req.ModelType = mlengine.ModelBoth
		}

		result, err := analysisSvc.Train(c.Request.Context(), middleware.UserID(c), req.ModelType)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoActiveDataset):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset."})
			case errors.Is(err, mlengine.ErrUnknownModelType):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "model_type must be 'regression', 'classification' or 'both'."})
			default:
				logger.Log.Errorf("training failed: %v", err)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Training failed: " + err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, dto.NewTrainResponseDTO(result))
	}
}

// ModelsHandler godoc
// @Summary      List trained models
// @Description  Returns the metadata of models trained on the active dataset.
// @Tags         analysis
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.ModelsResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /models [get]
func ModelsHandler(analysisSvc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ms, err := analysisSvc.Models(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, services.ErrNoActiveDataset) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset."})
				return
			}
			logger.Log.Errorf("model list failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Failed to list models."})
			return
		}

		c.JSON(http.StatusOK, dto.ModelsResponseDTO{Models: dto.NewMLModelDTOs(ms)})
	}
}

// InsightsHandler godoc
// @Summary      Build posting recommendations
// @Description  Aggregates best posting times, hashtags and caption lengths, optionally narrowed to one platform or content type, and replays trained models for predictions.
// @Tags         analysis
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.InsightsRequestDTO  false  "filters"
// @Success      200   {object}  dto.InsightsResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /predict/insights [post]
func InsightsHandler(analysisSvc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.InsightsRequestDTO
		if err := bindJSONAllowEmpty(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid request body."})
			return
		}

		insights, err := analysisSvc.Insights(c.Request.Context(), middleware.UserID(c), mlengine.Filter{
			Platform:    req.Platform,
			ContentType: req.ContentType,
		})
		if err != nil {
			if errors.Is(err, services.ErrNoActiveDataset) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset."})
				return
			}
			logger.Log.Errorf("insights failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Insights generation failed: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.InsightsResponseDTO{
			Insights: insights,
			Filters:  dto.InsightsFiltersDTO{Platform: req.Platform, ContentType: req.ContentType},
		})
	}
}

// DashboardHandler godoc
// @Summary      Build the dashboard chart payload
// @Description  Aggregates every chart series and KPI for the active dataset. Pass ?platform= to narrow the series to one platform.
// @Tags         analysis
// @Security     BearerAuth
// @Produce      json
// @Param        platform  query  string  false  "platform filter ('All' disables it)"
// @Success      200  {object}  analytics.Dashboard
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /dashboard [get]
func DashboardHandler(analysisSvc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		dashboard, err := analysisSvc.Dashboard(c.Request.Context(), middleware.UserID(c), c.Query("platform"))
		if err != nil {
			if errors.Is(err, services.ErrNoActiveDataset) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset."})
				return
			}
			logger.Log.Errorf("dashboard failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Dashboard data failed: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, dashboard)
	}
}

// FiltersHandler godoc
// @Summary      List filter options
// @Description  Returns the distinct platforms and content types present in the active dataset.
// @Tags         analysis
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  analytics.FilterOptions
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /filters [get]
func FiltersHandler(analysisSvc *services.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		options, err := analysisSvc.FilterOptions(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			if errors.Is(err, services.ErrNoActiveDataset) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset."})
				return
			}
			logger.Log.Errorf("filter options failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, options)
	}
}
