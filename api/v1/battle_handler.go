package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wordarena/WordArena/api/middleware"
	"github.com/wordarena/WordArena/internal/battle"
)

const INVALID_REQUEST = "invalid request"

var QueueService *battle.QueueService
var SessionService *battle.SessionService

func RegisterBattleRoutes(g *echo.Group) {
	g.POST("/queue", JoinQueueHandler)
	g.DELETE("/queue", LeaveQueueHandler)
	g.GET("/queue/status", QueueStatusHandler)
	g.GET("/history", MatchHistoryHandler)
}

func JoinQueueHandler(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var r battle.QueueRequest
	if err := c.Bind(&r); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := QueueService.JoinQueue(strconv.Itoa(int(userID)), r.Type); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"queued": true, "type": r.Type})
}

func LeaveQueueHandler(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	gameType := c.QueryParam("type")
	if gameType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "type is required")
	}

	if err := QueueService.LeaveQueue(strconv.Itoa(int(userID)), gameType); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"queued": false})
}

func QueueStatusHandler(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	status, err := QueueService.Status(strconv.Itoa(int(userID)))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, status)
}

func MatchHistoryHandler(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	history, err := SessionService.History(userID, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"matches": history})
}
