package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler writes errors to a gin context. Logging is left to the caller.
type GinErrorHandler struct {
	// Debug keeps the cause of internal errors in the response details.
	Debug bool
}

// HandleGinError converts err to an AppError and writes it as JSON.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		if h.Debug && appErr.Err != nil && appErr.Details == nil {
			// copy so shared AppError values are never mutated
			withCause := *appErr
			withCause.Details = gin.H{"cause": appErr.Err.Error()}
			appErr = &withCause
		}
	}

	c.AbortWithStatusJSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// HandleError writes err without debug details.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{}
	handler.HandleGinError(c, err)
}
