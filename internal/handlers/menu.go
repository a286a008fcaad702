package handlers

import (
	"errors"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/cafetec/cafetec-api/internal/models"
)

type MenuHandler struct {
	DB *gorm.DB
}

// GetMenu lists all products ordered by category then name, together with
// the distinct category set prefixed by the "Todas" sentinel. An optional
// ?categoria= filter narrows the product list; the category set always
// reflects the full menu.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	var products []models.Product
	if err := h.DB.WithContext(c.Request().Context()).
		Order("categoria ASC").
		Order("nombre ASC").
		Find(&products).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Error al cargar el menú.")
	}

	seen := make(map[string]bool)
	categories := []string{models.CategoryAll}
	var distinct []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			distinct = append(distinct, p.Category)
		}
	}
	sort.Strings(distinct)
	categories = append(categories, distinct...)

	filter := c.QueryParam("categoria")
	filtered := products
	if filter != "" && filter != models.CategoryAll {
		filtered = make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.Category == filter {
				filtered = append(filtered, p)
			}
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"productos":  filtered,
		"categorias": categories,
	})
}

// GetPaymentMethod returns the reference row for a payment method, e.g. the
// bank-transfer account details shown before submitting an order.
func (h *MenuHandler) GetPaymentMethod(c echo.Context) error {
	metodo := c.Param("metodo")

	var pm models.PaymentMethod
	err := h.DB.WithContext(c.Request().Context()).Where("metodo = ?", metodo).First(&pm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorResponse(c, http.StatusNotFound, "Método de pago no encontrado.")
		}
		return errorResponse(c, http.StatusInternalServerError, "Error al cargar datos de transferencia.")
	}

	return c.JSON(http.StatusOK, pm)
}
