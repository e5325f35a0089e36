package routes

import (
	"petshop/cmd/internal/utils/apierror"
	"strconv"

	"github.com/labstack/echo/v4"
)

// parsePagination reads ?page and ?limit, leaving clamping and the default
// page size to the service layer.
func parsePagination(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return page, limit
}

func parseIDParam(c echo.Context) (uint, apierror.ErrorResponse) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return 0, apierror.NewInvalidParamTypeError("id", "int")
	}
	return uint(id), nil
}
