package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cafetec/cafetec-api/internal/models"
)

type menuResponse struct {
	Products   []models.Product `json:"productos"`
	Categories []string         `json:"categorias"`
}

func TestGetMenuListsProductsAndCategories(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct("Pastel de Chocolate", "Postres", 4.00)
	env.seedProduct("Café Latte", "Café", 3.00)
	env.seedProduct("Café Americano", "Café", 2.50)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/menu", nil)
	require.NoError(t, env.Menu.GetMenu(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp menuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, []string{models.CategoryAll, "Café", "Postres"}, resp.Categories)

	// ordered by category then name
	require.Len(t, resp.Products, 3)
	require.Equal(t, "Café Americano", resp.Products[0].Name)
	require.Equal(t, "Café Latte", resp.Products[1].Name)
	require.Equal(t, "Pastel de Chocolate", resp.Products[2].Name)
}

func TestGetMenuCategoryFilter(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct("Café Americano", "Café", 2.50)
	env.seedProduct("Pastel de Chocolate", "Postres", 4.00)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/menu?categoria=Postres", nil)
	require.NoError(t, env.Menu.GetMenu(c))

	var resp menuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 1)
	require.Equal(t, "Pastel de Chocolate", resp.Products[0].Name)
	// category set still reflects the whole menu
	require.Equal(t, []string{models.CategoryAll, "Café", "Postres"}, resp.Categories)
}

func TestGetMenuSentinelReturnsEverything(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct("Café Americano", "Café", 2.50)
	env.seedProduct("Pastel de Chocolate", "Postres", 4.00)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/menu?categoria=Todas", nil)
	require.NoError(t, env.Menu.GetMenu(c))

	var resp menuResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 2)
}

func TestGetPaymentMethod(t *testing.T) {
	env := newTestEnv(t)
	bank := "Banco Pichincha"
	holder := "Café Tec S.A."
	account := "2203456789"
	require.NoError(t, env.DB.Create(&models.PaymentMethod{
		Method:        models.PaymentTransfer,
		Bank:          &bank,
		AccountHolder: &holder,
		AccountNumber: &account,
	}).Error)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/payment-methods/Transferencia", nil)
	c.SetPath("/api/v1/payment-methods/:metodo")
	c.SetParamNames("metodo")
	c.SetParamValues(models.PaymentTransfer)
	require.NoError(t, env.Menu.GetPaymentMethod(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var pm models.PaymentMethod
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pm))
	require.Equal(t, "Banco Pichincha", *pm.Bank)
}

func TestGetPaymentMethodUnknown(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(http.MethodGet, "/api/v1/payment-methods/Cheque", nil)
	c.SetPath("/api/v1/payment-methods/:metodo")
	c.SetParamNames("metodo")
	c.SetParamValues("Cheque")
	require.NoError(t, env.Menu.GetPaymentMethod(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
