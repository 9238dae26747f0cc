package apperrors

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// HTTPErrorHandler maps AppError codes onto echo JSON responses so handlers
// can just return service errors.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, echo.Map{"error": httpErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
