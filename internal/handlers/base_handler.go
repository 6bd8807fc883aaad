package handlers

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"jobtracker_backend/internal/logger"
	"jobtracker_backend/internal/validator"
	"jobtracker_backend/pkg/apperrors"
	"jobtracker_backend/pkg/contextkeys"
)

// ============================================================================
// 1. Base handler
// ============================================================================

type BaseHandler struct {
	validator  *validator.Validator
	log        *slog.Logger
	errHandler *apperrors.GinErrorHandler
}

// NewBaseHandler builds the shared handler helpers. With debug set, 5xx responses carry
// the underlying cause.
func NewBaseHandler(v *validator.Validator, log *slog.Logger, debug bool) *BaseHandler {
	if log == nil {
		log = slog.Default()
	}
	return &BaseHandler{
		validator:  v,
		log:        log,
		errHandler: &apperrors.GinErrorHandler{Debug: debug},
	}
}

// Logger returns the base logger enriched with the request id of c.
func (h *BaseHandler) Logger(c *gin.Context) *slog.Logger {
	return logger.FromContext(c.Request.Context(), h.log)
}

// ============================================================================
// 2. Database handle
// ============================================================================

// GetDB returns the *gorm.DB that DBMiddleware stored in c.
// A missing or mistyped value means the router was assembled without DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		h.Logger(c).Error("critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		h.Logger(c).Error("critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

// ============================================================================
// 3. Binding and validation
// ============================================================================

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	log := h.Logger(c)

	if err := c.ShouldBindJSON(obj); err != nil {
		log.Warn("Failed to bind JSON body", "error", err, "path", c.Request.URL.Path)
		h.errHandler.HandleGinError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			log.Warn("Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			h.errHandler.HandleGinError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			log.Error("Internal validator error", "error", err, "path", c.Request.URL.Path)
			h.errHandler.HandleGinError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// ============================================================================
// 4. Error responses
// ============================================================================

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	log := h.Logger(c)

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		if appErr.HTTPCode >= 500 {
			log.Error("Service error", "error", err, "path", c.Request.URL.Path)
		} else {
			log.Warn("Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		h.errHandler.HandleGinError(c, appErr)
		return
	}

	log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
	h.errHandler.HandleGinError(c, apperrors.InternalError(err))
}

// ============================================================================
// 5. Parsing
// ============================================================================

// ParseParamUint reads a positive integer path parameter.
func ParseParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	if valueStr == "" {
		return 0, apperrors.NewBadRequestError("Missing required path parameter: " + key)
	}
	value, err := strconv.ParseUint(valueStr, 10, 0)
	if err != nil || value == 0 {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key + " must be a positive integer")
	}
	return uint(value), nil
}

// pathID parses ":id" and writes the error response itself when it is invalid.
func (h *BaseHandler) pathID(c *gin.Context) (uint, bool) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return 0, false
	}
	return id, true
}
