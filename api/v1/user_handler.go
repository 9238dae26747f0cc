package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wordarena/WordArena/api/middleware"
	"github.com/wordarena/WordArena/internal/user"
	"github.com/wordarena/WordArena/pkg/storage"
)

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group) {
	g.POST("/signup", SignupHandler)
	g.POST("/login", LoginHandler)
	g.GET("/profile/:id", GetProfileHandler)
}

func RegisterAccountRoutes(g *echo.Group) {
	g.GET("/me", GetOwnProfileHandler)
	g.POST("/avatar", UploadAvatarHandler)
}

func SignupHandler(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	token, err := UserService.Signup(u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"token": token})
}

func LoginHandler(c echo.Context) error {
	var u user.User
	if err := c.Bind(&u); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	token, err := UserService.Login(u)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func GetProfileHandler(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	profile, errProfile := UserService.GetProfile(id)
	if errProfile != nil {
		return errProfile
	}
	return c.JSON(http.StatusOK, profile)
}

func GetOwnProfileHandler(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	profile, errProfile := UserService.GetProfile(int(userID))
	if errProfile != nil {
		return errProfile
	}
	return c.JSON(http.StatusOK, profile)
}

func UploadAvatarHandler(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "avatar file is required")
	}

	url, err := storage.UploadAvatar(fileHeader, userID)
	if errors.Is(err, storage.ErrNotConfigured) {
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := UserService.SetAvatar(int(userID), url); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"avatarUrl": url})
}
