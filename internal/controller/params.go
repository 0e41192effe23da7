package controller

import (
	"fmt"
	"strconv"

	"github.com/krakosik/voting-api/internal/dto"
	"github.com/labstack/echo/v4"
)

const (
	actionIncrement = "increment"
	actionDecrement = "decrement"
	actionReset     = "reset"
)

func parseID(raw, field string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", dto.ErrInvalidInput, field, raw)
	}
	return uint(id), nil
}

func pathID(c echo.Context) (uint, error) {
	return parseID(c.Param("id"), "id")
}

func formAction(c echo.Context) (string, error) {
	action := c.FormValue("action")
	if action == "" {
		return "", fmt.Errorf("%w: action is required", dto.ErrInvalidInput)
	}
	return action, nil
}

func unknownAction(action string) error {
	return fmt.Errorf("%w: unknown action %q", dto.ErrInvalidInput, action)
}
