package handlers

import (
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/cafetec/cafetec-api/internal/service/search"
	"github.com/cafetec/cafetec-api/internal/util"
)

type SearchHandler struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHandler) Search(c echo.Context) error {
	if h.ES == nil {
		return errorResponse(c, http.StatusServiceUnavailable, "La búsqueda no está disponible.")
	}

	q := c.QueryParam("q")
	if q == "" {
		return errorResponse(c, http.StatusBadRequest, "Ingresa un término de búsqueda.")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := search.Search(c.Request().Context(), h.ES, h.Index, q, from, size)
	if err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Error en la búsqueda.")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"total":     total,
		"productos": products,
	})
}
