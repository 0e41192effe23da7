package controller

import (
	"errors"
	"fmt"
	"net/http"

	ctx "github.com/krakosik/voting-api/internal/context"
	"github.com/krakosik/voting-api/internal/dto"
	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler maps service errors to status codes and writes them as JSON.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := errorStatus(err)
	if code >= http.StatusInternalServerError {
		ctx.GetLoggerFromContext(c.Request().Context()).Errorf("Request failed: %v", err)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = respond(c, code, dto.Error{Error: message})
	}
	if err != nil {
		ctx.GetLoggerFromContext(c.Request().Context()).Errorf("Error writing error response: %v", err)
	}
}

func errorStatus(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, dto.ErrNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, dto.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, dto.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &httpErr):
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	default:
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}
