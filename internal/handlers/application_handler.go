package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobtracker_backend/internal/services"
	"jobtracker_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r gin.IRouter) {
	apps := r.Group("/applications")
	{
		apps.POST("", h.Create)
		apps.GET("", h.FindAll)
		apps.GET("/:id", h.FindOne)
		apps.PATCH("/:id", h.Update)
		apps.DELETE("/:id", h.Remove)
	}
}

// Create godoc
// @Summary Create an application
// @Tags applications
// @Accept json
// @Produce json
// @Param application body dto.CreateApplicationRequest true "New application"
// @Success 201 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse "validation failed"
// @Failure 404 {object} apperrors.ErrorResponse "user not found"
// @Failure 409 {object} apperrors.ErrorResponse "link already registered for this user"
// @Router /applications [post]
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req dto.CreateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// FindAll godoc
// @Summary List applications
// @Tags applications
// @Produce json
// @Success 200 {array} dto.ApplicationResponse
// @Router /applications [get]
func (h *ApplicationHandler) FindAll(c *gin.Context) {
	apps, err := h.applicationService.FindAll(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

// FindOne godoc
// @Summary Get an application by ID
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse "invalid id"
// @Failure 404 {object} apperrors.ErrorResponse "application not found"
// @Router /applications/{id} [get]
func (h *ApplicationHandler) FindOne(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	app, err := h.applicationService.FindOne(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// Update godoc
// @Summary Partially update an application
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param application body dto.UpdateApplicationRequest true "Fields to change"
// @Success 200 {object} dto.ApplicationResponse
// @Failure 400 {object} apperrors.ErrorResponse "validation failed"
// @Failure 404 {object} apperrors.ErrorResponse "application or user not found"
// @Failure 409 {object} apperrors.ErrorResponse "link already registered for this user"
// @Router /applications/{id} [patch]
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.applicationService.Update(c.Request.Context(), h.GetDB(c), id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

// Remove godoc
// @Summary Delete an application
// @Tags applications
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {object} dto.ApplicationResponse "the deleted application"
// @Failure 400 {object} apperrors.ErrorResponse "invalid id"
// @Failure 404 {object} apperrors.ErrorResponse "application not found"
// @Router /applications/{id} [delete]
func (h *ApplicationHandler) Remove(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	app, err := h.applicationService.Remove(c.Request.Context(), h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}
