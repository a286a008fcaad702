package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cafetec/cafetec-api/internal/hash"
	"github.com/cafetec/cafetec-api/internal/models"
	"github.com/cafetec/cafetec-api/internal/service/orders"
)

type testEnv struct {
	T           *testing.T
	E           *echo.Echo
	DB          *gorm.DB
	Menu        *MenuHandler
	Orders      *OrderHandler
	Comments    *CommentHandler
	Auth        *AuthHandler
	AdminOrders *AdminOrderHandler
	Products    *ProductHandler
	JWTSecret   []byte
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Comment{},
		&models.Admin{},
		&models.PaymentMethod{},
	))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	db := newTestDB(t)
	svc := &orders.Service{DB: db}
	secret := []byte("test_secret")

	// no broker and no search cluster in tests; both are nil-safe
	return &testEnv{
		T:           t,
		E:           echo.New(),
		DB:          db,
		Menu:        &MenuHandler{DB: db},
		Orders:      &OrderHandler{Svc: svc},
		Comments:    &CommentHandler{DB: db},
		Auth:        &AuthHandler{DB: db, JWTSecret: secret},
		AdminOrders: &AdminOrderHandler{Svc: svc},
		Products:    &ProductHandler{DB: db, Index: "producto"},
		JWTSecret:   secret,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedProduct(name, category string, price float64) models.Product {
	env.T.Helper()
	p := models.Product{Name: name, Category: category, Price: price}
	require.NoError(env.T, env.DB.Create(&p).Error)
	return p
}

func (env *testEnv) seedAdmin(email, password string) models.Admin {
	env.T.Helper()
	h, err := hash.HashPassword(password)
	require.NoError(env.T, err)
	a := models.Admin{Name: "Admin Café", Email: email, PasswordHash: h}
	require.NoError(env.T, env.DB.Create(&a).Error)
	return a
}

func (env *testEnv) placeOrder(productID uint, qty int) (code string, id uint, total float64) {
	env.T.Helper()
	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/orders", map[string]interface{}{
		"nombre":      "Juan Pérez",
		"correo":      "juan@example.com",
		"metodo_pago": models.PaymentCash,
		"items": []map[string]interface{}{
			{"producto_id": productID, "cantidad": qty},
		},
	})
	require.NoError(env.T, env.Orders.Place(c))
	require.Equal(env.T, http.StatusCreated, rec.Code)

	var resp struct {
		ID     uint    `json:"id"`
		Code   string  `json:"codigo"`
		Total  float64 `json:"total"`
		Status string  `json:"estado"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Code, resp.ID, resp.Total
}
