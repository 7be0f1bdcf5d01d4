// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"vidtube/config"
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VideoHandler        *handler.VideoHandler
	CommentHandler      *handler.CommentHandler
	LikeHandler         *handler.LikeHandler
	TweetHandler        *handler.TweetHandler
	PlaylistHandler     *handler.PlaylistHandler
	SubscriptionHandler *handler.SubscriptionHandler
	DashboardHandler    *handler.DashboardHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Config              *config.Config
}

type Router struct {
	RouterParams

	// uploadRoutes holds "METHOD path" of the multipart endpoints.
	uploadRoutes map[string]struct{}
}

func NewRouter(params RouterParams) *Router {
	return &Router{
		RouterParams: params,
		uploadRoutes: make(map[string]struct{}),
	}
}

// IsUploadRoute reports whether c matched a multipart endpoint. Those carry their
// own, larger body limit.
func (r *Router) IsUploadRoute(c echo.Context) bool {
	_, ok := r.uploadRoutes[c.Request().Method+" "+c.Path()]

	return ok
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	auth := r.AuthMiddleware.Authenticate
	optional := r.AuthMiddleware.OptionalAuth
	limited := r.RateLimitMiddleware.Limit

	e.GET("/healthcheck", r.HealthHandler.HealthCheck)

	api := e.Group("/api/v1")
	api.GET("/healthcheck", r.HealthHandler.HealthCheck)

	users := api.Group("/users")
	{
		r.upload(users, http.MethodPost, "/register", r.UserHandler.Register, limited)
		users.POST("/login", r.UserHandler.Login, limited)
		users.POST("/refresh-access-token", r.UserHandler.RefreshAccessToken, limited)
		users.GET("/channel/:username", r.UserHandler.GetChannelProfile, optional)

		users.DELETE("/logout", r.UserHandler.Logout, auth)
		users.POST("/change-current-password", r.UserHandler.ChangePassword, auth)
		users.GET("/get-current-user", r.UserHandler.GetCurrentUser, auth)
		users.PATCH("/update-account-details", r.UserHandler.UpdateAccountDetails, auth)
		r.upload(users, http.MethodPatch, "/update-user-avatar", r.UserHandler.UpdateAvatar, auth)
		r.upload(users, http.MethodPatch, "/update-user-cover-image", r.UserHandler.UpdateCoverImage, auth)
		users.GET("/get-user-watch-history", r.UserHandler.GetWatchHistory, auth)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", r.VideoHandler.ListVideos, optional)
		r.upload(videos, http.MethodPost, "", r.VideoHandler.PublishVideo, auth)
		videos.GET("/:videoId", r.VideoHandler.GetVideo, optional)
		r.upload(videos, http.MethodPatch, "/:videoId", r.VideoHandler.UpdateVideo, auth)
		videos.DELETE("/:videoId", r.VideoHandler.DeleteVideo, auth)
		videos.PATCH("/toggle/publish/:videoId", r.VideoHandler.TogglePublish, auth)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", r.CommentHandler.ListComments, optional)
		comments.POST("/:videoId", r.CommentHandler.AddComment, auth)
		comments.PATCH("/id/:commentId", r.CommentHandler.UpdateComment, auth)
		comments.DELETE("/id/:commentId", r.CommentHandler.DeleteComment, auth)
	}

	likes := api.Group("/likes", auth)
	{
		likes.POST("/toggle/video/:videoId", r.LikeHandler.ToggleVideoLike)
		likes.POST("/toggle/comment/:commentId", r.LikeHandler.ToggleCommentLike)
		likes.POST("/toggle/tweet/:tweetId", r.LikeHandler.ToggleTweetLike)
		likes.GET("/videos", r.LikeHandler.ListLikedVideos)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", r.TweetHandler.CreateTweet, auth)
		tweets.GET("/user/:userId", r.TweetHandler.ListUserTweets)
		tweets.PATCH("/:tweetId", r.TweetHandler.UpdateTweet, auth)
		tweets.DELETE("/:tweetId", r.TweetHandler.DeleteTweet, auth)
	}

	playlists := api.Group("/playlists", auth)
	{
		playlists.POST("", r.PlaylistHandler.CreatePlaylist)
		playlists.GET("/:playlistId", r.PlaylistHandler.GetPlaylist)
		playlists.PATCH("/:playlistId", r.PlaylistHandler.UpdatePlaylist)
		playlists.DELETE("/:playlistId", r.PlaylistHandler.DeletePlaylist)
		playlists.PATCH("/add/:videoId/:playlistId", r.PlaylistHandler.AddVideo)
		playlists.PATCH("/remove/:videoId/:playlistId", r.PlaylistHandler.RemoveVideo)
		playlists.GET("/user/:userId", r.PlaylistHandler.ListUserPlaylists)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.GET("", r.SubscriptionHandler.ListSubscribedChannels, auth)
		subscriptions.GET("/channel/:channelId", r.SubscriptionHandler.CountSubscribers)
		subscriptions.POST("/channel/:channelId", r.SubscriptionHandler.ToggleSubscription, auth)
		subscriptions.GET("/channel/:channelId/qr", r.SubscriptionHandler.GenerateSubscriptionQR)
		subscriptions.GET("/user/:channelId", r.SubscriptionHandler.ListSubscribers, auth)
		subscriptions.POST("/qr", r.SubscriptionHandler.SubscribeByQR, auth)
	}

	dashboard := api.Group("/dashboard", auth)
	{
		dashboard.GET("/stats", r.DashboardHandler.GetChannelStats)
		dashboard.GET("/videos", r.DashboardHandler.ListChannelVideos)
	}
}

// upload registers a multipart route with the media upload body limit.
func (r *Router) upload(g *echo.Group, method, path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	m = append([]echo.MiddlewareFunc{echomiddleware.BodyLimit(r.Config.Media.MaxUploadSize)}, m...)
	route := g.Add(method, path, h, m...)
	r.uploadRoutes[route.Method+" "+route.Path] = struct{}{}
}
