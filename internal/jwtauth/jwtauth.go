package jwtauth

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/cafetec/cafetec-api/internal/models"
)

const AccessTokenTTL = 12 * time.Hour

func SignAccessToken(admin models.Admin, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"sub":    admin.ID,
		"nombre": admin.Name,
		"exp":    time.Now().Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Middleware guards the staff views: every request must carry a valid access
// token, either as a bearer header or the login cookie.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningMethod: "HS256",
		SigningKey:    secret,
		ContextKey:    "admin",
		TokenLookup:   "header:Authorization:Bearer ,cookie:accessToken",
	})
}

func CreateCookie(name string, value string, path string, expTime time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  expTime,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}
