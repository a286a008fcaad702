package handlers

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cafetec/cafetec-api/internal/logging"
	"github.com/cafetec/cafetec-api/internal/mykafka"
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorResponse(c echo.Context, code int, msg string) error {
	return c.JSON(code, Response{
		Status:  "error",
		Message: msg,
	})
}

// publish sends an event best-effort: failures are logged and never surface
// to the client.
func publish(c echo.Context, p *mykafka.Producer, topic, key string, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "topic", topic, "error", err)
	}
}
