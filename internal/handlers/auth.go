package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/cafetec/cafetec-api/internal/hash"
	"github.com/cafetec/cafetec-api/internal/jwtauth"
	"github.com/cafetec/cafetec-api/internal/logging"
	"github.com/cafetec/cafetec-api/internal/models"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
}

// Login checks staff credentials against the admin table and issues a signed,
// expiring access token. Passwords are stored as bcrypt hashes.
func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"correo"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Cuerpo de la solicitud inválido.")
	}

	var admin models.Admin
	if err := h.DB.WithContext(ctx).Where("correo = ?", req.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return errorResponse(c, http.StatusUnauthorized, "Usuario no encontrado.")
		}
		l.Error("login_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, "Error en la base de datos.")
	}

	if !hash.CheckPassword(admin.PasswordHash, req.Password) {
		l.Warn("login_failed", "reason", "bad password", "admin_id", admin.ID)
		return errorResponse(c, http.StatusUnauthorized, "Contraseña incorrecta.")
	}

	token, err := jwtauth.SignAccessToken(admin, h.JWTSecret)
	if err != nil {
		l.Error("login_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, "No se pudo crear el token.")
	}

	c.SetCookie(jwtauth.CreateCookie("accessToken", token, "/", time.Now().Add(jwtauth.AccessTokenTTL)))

	l.Info("login_success", "admin_id", admin.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"nombre":       admin.Name,
	})
}
