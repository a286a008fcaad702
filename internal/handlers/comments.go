package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/cafetec/cafetec-api/internal/logging"
	"github.com/cafetec/cafetec-api/internal/models"
	"github.com/cafetec/cafetec-api/internal/mykafka"
	"github.com/cafetec/cafetec-api/internal/service/userstore"
)

type CommentHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
}

func (h *CommentHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "comments.create")

	var req struct {
		Name    string `json:"nombre"`
		Email   string `json:"correo"`
		Message string `json:"mensaje"`
	}
	if err := c.Bind(&req); err != nil {
		return errorResponse(c, http.StatusBadRequest, "Cuerpo de la solicitud inválido.")
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		return errorResponse(c, http.StatusBadRequest, "Por favor, completa todos los campos: nombre, correo y comentario.")
	}

	user, _, err := userstore.FindOrCreate(ctx, h.DB, strings.TrimSpace(req.Name), strings.TrimSpace(req.Email))
	if err != nil {
		l.Error("create_comment_error", "reason", "user lookup", "error", err)
		return errorResponse(c, http.StatusInternalServerError, "Error al verificar el usuario.")
	}

	comment := models.Comment{
		UserID:    user.ID,
		Message:   strings.TrimSpace(req.Message),
		CreatedAt: time.Now(),
	}
	if err := h.DB.WithContext(ctx).Create(&comment).Error; err != nil {
		l.Error("create_comment_error", "error", err)
		return errorResponse(c, http.StatusInternalServerError, "Error al enviar el comentario.")
	}

	publish(c, h.Producer, mykafka.TopicCommentEvents, fmt.Sprint(comment.ID), map[string]interface{}{
		"type":      "comment_created",
		"commentID": comment.ID,
		"usuarioID": user.ID,
	})

	l.Info("create_comment_success", "comment_id", comment.ID)
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      comment.ID,
		"mensaje": "¡Comentario enviado con éxito! Gracias por tu opinión.",
	})
}
