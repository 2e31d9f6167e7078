package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/job-application-tracker/internal/dtos"
	"github.com/justsurfingit/job-application-tracker/internal/models"
	"github.com/justsurfingit/job-application-tracker/internal/services"
)

// ApplicationHandler translates HTTP requests into service calls and envelopes back
// into status codes. It holds no logic of its own.
type ApplicationHandler struct {
	Service *services.ApplicationService
}

func NewApplicationHandler(s *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Service: s}
}

// RegisterRoutes mounts the application routes on the given group.
func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/applications", h.ListApplications)
	api.GET("/applications/:id", h.GetApplication)
	api.POST("/applications", h.CreateApplication)
	api.PUT("/applications/:id", h.UpdateApplication)
	api.DELETE("/applications/:id", h.DeleteApplication)
	api.GET("/statuses", h.ListStatuses)
}

// CreateApplication is the POST /applications endpoint.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}

	result := h.Service.CreateApplication(c.Request.Context(), req)
	if !result.Success {
		c.JSON(mutationStatus(result), result)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// UpdateApplication is the PUT /applications/:id endpoint. The path id wins over
// any id in the body.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dtos.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON format: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	result := h.Service.UpdateApplication(c.Request.Context(), req)
	if !result.Success {
		c.JSON(mutationStatus(result), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteApplication is the DELETE /applications/:id endpoint.
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	result := h.Service.DeleteApplication(c.Request.Context(), c.Param("id"))
	if !result.Success {
		c.JSON(mutationStatus(result), result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListApplications is the GET /applications endpoint. Filter params come from the
// query string; a bad filter falls back to the default ordering.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	var req dtos.FilterRequest
	_ = c.ShouldBindQuery(&req)

	apps, err := h.Service.GetApplications(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": apps})
}

// GetApplication is the GET /applications/:id endpoint.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.Service.GetApplicationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch application"})
		return
	}
	if app == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": services.ErrMsgNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": app})
}

// ListStatuses serves the status enum with display labels so the frontend renders
// badges without hardcoding them.
func (h *ApplicationHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": models.StatusConfigs})
}

// mutationStatus picks the HTTP status for a failed mutation envelope.
func mutationStatus[T any](result services.Result[T]) int {
	switch {
	case result.FieldErrors != nil:
		return http.StatusBadRequest
	case result.Error == services.ErrMsgNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
