package app

import (
	"net/http"

	"github.com/Someshsw1109/soundwave-backend/models"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (app *Application) Router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = app.HTTPErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(app.RequestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{app.Config.Server.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	api := e.Group("/api")
	api.GET("/health", app.HandleHealth)

	authGroup := api.Group("/auth")
	authGroup.POST("/register", app.HandleRegister)
	authGroup.POST("/login", app.HandleLogin)
	authGroup.POST("/verify", app.HandleVerify, app.Authenticate)
	authGroup.POST("/logout", app.HandleLogout, app.Authenticate)

	user := api.Group("/user")
	user.GET("/me", app.HandleGetMe, app.Authenticate)
	user.PUT("/me", app.HandleUpdateMe, app.Authenticate)
	user.GET("/search/:query", app.HandleSearchUsers)
	user.GET("/:userId", app.HandleGetUser)

	playlists := api.Group("/playlists")
	playlists.POST("", app.HandleCreatePlaylist, app.Authenticate)
	playlists.GET("", app.HandleListMyPlaylists, app.Authenticate)
	playlists.GET("/user/:userId", app.HandleListUserPlaylists, app.OptionalAuthenticate)
	playlists.GET("/:playlistId", app.HandleGetPlaylist, app.OptionalAuthenticate)
	playlists.PUT("/:playlistId", app.HandleUpdatePlaylist, app.Authenticate)
	playlists.DELETE("/:playlistId", app.HandleDeletePlaylist, app.Authenticate)
	playlists.POST("/:playlistId/tracks", app.HandleAddTrack, app.Authenticate)
	playlists.DELETE("/:playlistId/tracks/:trackId", app.HandleRemoveTrack, app.Authenticate)
	playlists.POST("/:playlistId/collaborators/:userId", app.HandleAddCollaborator, app.Authenticate)
	playlists.DELETE("/:playlistId/collaborators/:userId", app.HandleRemoveCollaborator, app.Authenticate)
	playlists.POST("/:playlistId/follow", app.HandleFollowPlaylist, app.Authenticate)
	playlists.DELETE("/:playlistId/follow", app.HandleUnfollowPlaylist, app.Authenticate)

	favorites := api.Group("/favorites", app.Authenticate)
	favorites.GET("", app.HandleListFavorites)
	favorites.POST("", app.HandleAddFavorite)
	favorites.GET("/check/:trackId", app.HandleCheckFavorite)
	favorites.DELETE("/:trackId", app.HandleRemoveFavorite)

	social := api.Group("/social")
	social.POST("/follow/:userId", app.HandleFollow, app.Authenticate)
	social.POST("/unfollow/:userId", app.HandleUnfollow, app.Authenticate)
	social.GET("/followers/:userId", app.HandleFollowers)
	social.GET("/following/:userId", app.HandleFollowing)
	social.GET("/recommendations", app.HandleRecommendations, app.Authenticate)

	return e
}

func (app *Application) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{Status: "Backend is running"})
}
