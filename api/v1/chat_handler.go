package v1

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/wordarena/WordArena/internal/chat"
)

var ChatResponder *chat.Responder

func RegisterChatRoutes(g *echo.Group) {
	g.POST("", ChatHandler)
}

func ChatHandler(c echo.Context) error {
	var req chat.ChatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	if strings.TrimSpace(req.Message) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message is required")
	}

	resp := ChatResponder.Respond(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, resp)
}
