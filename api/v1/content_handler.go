package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wordarena/WordArena/internal/content"
)

var ContentService *content.ContentService

func RegisterContentRoutes(g *echo.Group) {
	g.GET("/passages", ListPassagesHandler)
	g.GET("/passages/random", RandomPassageHandler)
	g.GET("/passages/:id", GetPassageHandler)
	g.GET("/words/random", RandomWordsHandler)
}

func ListPassagesHandler(c echo.Context) error {
	passages, err := ContentService.Passages()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"passages": passages})
}

func RandomPassageHandler(c echo.Context) error {
	passage, err := ContentService.RandomPassage()
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, passage)
}

func GetPassageHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid passage ID")
	}

	passage, errP := ContentService.Passage(id)
	if errP != nil {
		return errP
	}

	return c.JSON(http.StatusOK, passage)
}

func RandomWordsHandler(c echo.Context) error {
	count, _ := strconv.Atoi(c.QueryParam("count"))

	words, err := ContentService.RandomWords(count)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"words": words})
}
