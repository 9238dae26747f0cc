package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wordarena/WordArena/api/middleware"
	"github.com/wordarena/WordArena/internal/leaderboard"
)

var LeaderboardService *leaderboard.LeaderboardService

func RegisterLeaderboardRoutes(g *echo.Group) {
	g.GET("", GetLeaderboardHandler)
}

func RegisterStandingRoutes(g *echo.Group) {
	g.GET("/standing", GetStandingHandler)
}

func GetLeaderboardHandler(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	entries, err := LeaderboardService.Top(limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"leaderboard": entries})
}

func GetStandingHandler(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	standing, err := LeaderboardService.StandingOf(userID)
	if err != nil {
		return err
	}

	if standing == nil {
		return c.JSON(http.StatusOK, echo.Map{"ranked": false})
	}

	return c.JSON(http.StatusOK, standing)
}
