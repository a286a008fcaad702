package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/cafetec/cafetec-api/internal/logging"
	"github.com/cafetec/cafetec-api/internal/models"
	"github.com/cafetec/cafetec-api/internal/mykafka"
)

// ProductHandler manages the menu itself (staff only). Changes are mirrored
// into the search index.
type ProductHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

type productRequest struct {
	Name        string  `json:"nombre"`
	Description *string `json:"descripcion"`
	Price       float64 `json:"precio"`
	Category    string  `json:"categoria"`
}

func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Cuerpo de la solicitud inválido.")
	}
	if req.Name == "" || req.Category == "" || req.Price < 0 {
		return errorResponse(c, http.StatusBadRequest, "Nombre, categoría y precio válido son obligatorios.")
	}

	prod := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	}
	if err := h.DB.WithContext(c.Request().Context()).Create(&prod).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Error al crear el producto.")
	}

	h.indexProduct(c.Request().Context(), prod)
	publish(c, h.Producer, mykafka.TopicProductEvents, fmt.Sprint(prod.ID), map[string]interface{}{
		"type":      "product_created",
		"productID": prod.ID,
		"nombre":    prod.Name,
	})

	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHandler) Patch(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ID de producto inválido.")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Cuerpo de la solicitud inválido.")
	}

	var prod models.Product
	if err := h.DB.WithContext(c.Request().Context()).First(&prod, id).Error; err != nil {
		return errorResponse(c, http.StatusNotFound, "Producto no encontrado.")
	}

	if req.Name != "" {
		prod.Name = req.Name
	}
	if req.Description != nil {
		prod.Description = req.Description
	}
	if req.Price > 0 {
		prod.Price = req.Price
	}
	if req.Category != "" {
		prod.Category = req.Category
	}

	if err := h.DB.WithContext(c.Request().Context()).Save(&prod).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Error al actualizar el producto.")
	}

	h.indexProduct(c.Request().Context(), prod)
	publish(c, h.Producer, mykafka.TopicProductEvents, fmt.Sprint(prod.ID), map[string]interface{}{
		"type":      "product_updated",
		"productID": prod.ID,
		"nombre":    prod.Name,
	})

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorResponse(c, http.StatusBadRequest, "ID de producto inválido.")
	}

	if err := h.DB.WithContext(c.Request().Context()).Delete(&models.Product{}, id).Error; err != nil {
		return errorResponse(c, http.StatusInternalServerError, "Error al eliminar el producto.")
	}

	h.removeFromIndex(c.Request().Context(), uint(id))
	publish(c, h.Producer, mykafka.TopicProductEvents, fmt.Sprint(id), map[string]interface{}{
		"type":      "product_deleted",
		"productID": id,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *ProductHandler) indexProduct(ctx context.Context, p models.Product) {
	if h.ES == nil {
		return
	}
	l := logging.FromContext(ctx)

	data, err := json.Marshal(p)
	if err != nil {
		l.Error("es index error", "product_id", p.ID, "error", err)
		return
	}
	res, err := h.ES.Index(
		h.Index,
		bytes.NewReader(data),
		h.ES.Index.WithDocumentID(strconv.Itoa(int(p.ID))),
		h.ES.Index.WithContext(ctx),
	)
	if err != nil {
		l.Error("es index error", "product_id", p.ID, "error", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() {
		l.Error("es index error", "product_id", p.ID, "status", res.Status())
	}
}

func (h *ProductHandler) removeFromIndex(ctx context.Context, id uint) {
	if h.ES == nil {
		return
	}
	l := logging.FromContext(ctx)

	res, err := h.ES.Delete(
		h.Index,
		strconv.Itoa(int(id)),
		h.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		l.Error("es delete error", "product_id", id, "error", err)
		return
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		l.Error("es delete error", "product_id", id, "status", res.Status())
	}
}
