package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Abaneee/social-pulse/cmd/api/dto"
	"github.com/Abaneee/social-pulse/cmd/api/middleware"
	"github.com/Abaneee/social-pulse/internal/logger"
	"github.com/Abaneee/social-pulse/services"
)

// UploadDatasetHandler godoc
// @Summary      Upload a CSV of posts
// @Description  Parses and stores the file, makes it the active dataset and returns a preview with a data health summary.
// @Tags         datasets
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CSV file (max 50 MB)"
// @Success      201   {object}  dto.UploadResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /upload [post]
func UploadDatasetHandler(dataSvc *services.DatasetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No file provided."})
			return
		}

		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No file provided."})
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			logger.Log.Errorf("upload read failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Upload failed."})
			return
		}

		result, err := dataSvc.Upload(c.Request.Context(), middleware.UserID(c), fileHeader.Filename, data)
		if err != nil {
			var parseErr *services.ParseError
			switch {
			case errors.Is(err, services.ErrNotCSV):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Only CSV files are accepted."})
			case errors.Is(err, services.ErrFileTooLarge):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "File size must be under 50 MB."})
			case errors.As(err, &parseErr):
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Failed to parse CSV: " + parseErr.Err.Error()})
			default:
				logger.Log.Errorf("upload failed: %v", err)
				c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Upload failed."})
			}
			return
		}

		c.JSON(http.StatusCreated, dto.UploadResponseDTO{
			Dataset:    dto.NewDatasetDTO(result.Dataset),
			Preview:    result.Preview,
			DataHealth: result.Health,
		})
	}
}

// ListDatasetsHandler godoc
// @Summary      List the caller's datasets
// @Tags         datasets
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   dto.DatasetDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /datasets [get]
func ListDatasetsHandler(dataSvc *services.DatasetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		datasets, err := dataSvc.List(c.Request.Context(), middleware.UserID(c))
		if err != nil {
			logger.Log.Errorf("dataset list failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Failed to list datasets."})
			return
		}
		c.JSON(http.StatusOK, dto.NewDatasetDTOs(datasets))
	}
}

// ActivateDatasetHandler godoc
// @Summary      Activate one dataset
// @Description  Marks the dataset as the caller's active one. All analysis endpoints operate on the active dataset.
// @Tags         datasets
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "dataset ID"
// @Success      200  {object}  dto.ActivateResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /datasets/{id}/activate [post]
func ActivateDatasetHandler(dataSvc *services.DatasetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ds, err := dataSvc.Activate(c.Request.Context(), middleware.UserID(c), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrDatasetNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Dataset not found."})
				return
			}
			logger.Log.Errorf("dataset activate failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Failed to activate dataset."})
			return
		}

		c.JSON(http.StatusOK, dto.ActivateResponseDTO{
			Message: "Dataset activated.",
			Dataset: dto.NewDatasetDTO(ds),
		})
	}
}

// DeleteDatasetHandler godoc
// @Summary      Delete one dataset
// @Description  Removes the dataset together with its stored files, cleaning log, profiling reports and trained models.
// @Tags         datasets
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "dataset ID"
// @Success      200  {object}  dto.MessageResponseDTO
// @Failure      401  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /datasets/{id} [delete]
func DeleteDatasetHandler(dataSvc *services.DatasetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := dataSvc.Delete(c.Request.Context(), middleware.UserID(c), c.Param("id")); err != nil {
			if errors.Is(err, services.ErrDatasetNotFound) {
				c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Error: "Dataset not found."})
				return
			}
			logger.Log.Errorf("dataset delete failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Failed to delete dataset."})
			return
		}

		c.JSON(http.StatusOK, dto.MessageResponseDTO{Message: "Dataset deleted."})
	}
}

// ProcessDatasetHandler godoc
// @Summary      Clean the active dataset
// @Description  Runs the preprocessing pipeline over the active dataset's raw file and stores the cleaned copy. Optional steps are toggled in the body.
// @Tags         datasets
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ProcessRequestDTO  false  "cleaning options"
// @Success      200   {object}  dto.ProcessResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      401   {object}  dto.ErrorResponseDTO
// @Failure      500   {object}  dto.ErrorResponseDTO
// @Router       /process [post]
func ProcessDatasetHandler(dataSvc *services.DatasetService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ProcessRequestDTO
		if err := bindJSONAllowEmpty(c, &req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "Invalid request body."})
			return
		}

		result, err := dataSvc.Process(c.Request.Context(), middleware.UserID(c), req.Options())
		if err != nil {
			if errors.Is(err, services.ErrNoActiveDataset) {
				c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "No active dataset. Please upload and activate a dataset first."})
				return
			}
			logger.Log.Errorf("preprocessing failed: %v", err)
			c.JSON(http.StatusInternalServerError, dto.ErrorResponseDTO{Error: "Preprocessing failed: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, dto.ProcessResponseDTO{
			Message:       "Data processed successfully.",
			Preprocessing: dto.NewPreprocessingLogDTO(result.Log),
			Preview:       result.Preview,
			DataHealth:    result.Health,
		})
	}
}
