package handler

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/model"
	"vidtube/internal/service"
)

// Services bundles everything the routes dispatch to.
type Services struct {
	Users         service.UserService
	Videos        service.VideoService
	Comments      service.CommentService
	Likes         service.LikeService
	Subscriptions service.SubscriptionService
	Tweets        service.TweetService
	Playlists     service.PlaylistService
	Dashboard     service.DashboardService
}

// RouteConfig carries the non-service dependencies of the routes.
type RouteConfig struct {
	Ping    PingFunc
	Cookies CookieConfig
	// AuthLimiter throttles register, login and refresh. Nil disables it.
	AuthLimiter fiber.Handler
}

// RegisterRoutes attaches the health probes and the /api/v1 surface to app.
func RegisterRoutes(app *fiber.App, svc Services, cfg RouteConfig) {
	app.Get("/health", HealthCheck(cfg.Ping))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api/v1")
	api.Get("/healthcheck", APIHealthcheck())

	auth := middleware.RequireAuth(svc.Users)
	limit := cfg.AuthLimiter
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}

	users := api.Group("/users")
	users.Post("/register", limit, RegisterUser(svc.Users))
	users.Post("/login", limit, LoginUser(svc.Users, cfg.Cookies))
	users.Post("/refresh-token", limit, RefreshToken(svc.Users, cfg.Cookies))
	users.Post("/logout", auth, LogoutUser(svc.Users, cfg.Cookies))
	users.Post("/change-password", auth, ChangePassword(svc.Users))
	users.Get("/current-user", auth, CurrentUser(svc.Users))
	users.Patch("/update-account", auth, UpdateAccount(svc.Users))
	users.Patch("/avatar", auth, UpdateAvatar(svc.Users))
	users.Patch("/cover-image", auth, UpdateCoverImage(svc.Users))
	users.Get("/c/:username", auth, ChannelProfile(svc.Users))
	users.Get("/history", auth, WatchHistory(svc.Users))

	videos := api.Group("/videos")
	videos.Get("/", ListVideos(svc.Videos))
	videos.Post("/", auth, PublishVideo(svc.Videos))
	videos.Patch("/toggle/publish/:videoId", auth, TogglePublishStatus(svc.Videos))
	videos.Get("/:videoId", auth, GetVideo(svc.Videos))
	videos.Patch("/:videoId", auth, UpdateVideo(svc.Videos))
	videos.Delete("/:videoId", auth, DeleteVideo(svc.Videos))

	comments := api.Group("/comments")
	comments.Patch("/c/:commentId", auth, UpdateComment(svc.Comments))
	comments.Delete("/c/:commentId", auth, DeleteComment(svc.Comments))
	comments.Get("/:videoId", VideoComments(svc.Comments))
	comments.Post("/:videoId", auth, AddComment(svc.Comments))

	likes := api.Group("/likes", auth)
	likes.Post("/toggle/v/:videoId", ToggleLike(svc.Likes, model.LikeTargetVideo, "videoId"))
	likes.Post("/toggle/c/:commentId", ToggleLike(svc.Likes, model.LikeTargetComment, "commentId"))
	likes.Post("/toggle/t/:tweetId", ToggleLike(svc.Likes, model.LikeTargetTweet, "tweetId"))
	likes.Get("/videos", LikedVideos(svc.Likes))

	subs := api.Group("/subscriptions")
	subs.Post("/c/:channelId", auth, ToggleSubscription(svc.Subscriptions))
	subs.Get("/c/:channelId", ChannelSubscribers(svc.Subscriptions))
	subs.Get("/u/:subscriberId", SubscribedChannels(svc.Subscriptions))

	tweets := api.Group("/tweets")
	tweets.Post("/", auth, CreateTweet(svc.Tweets))
	tweets.Get("/user/:userId", UserTweets(svc.Tweets))
	tweets.Patch("/:tweetId", auth, UpdateTweet(svc.Tweets))
	tweets.Delete("/:tweetId", auth, DeleteTweet(svc.Tweets))

	playlists := api.Group("/playlist")
	playlists.Post("/", auth, CreatePlaylist(svc.Playlists))
	playlists.Get("/user/:userId", UserPlaylists(svc.Playlists))
	playlists.Patch("/add/:videoId/:playlistId", auth, AddVideoToPlaylist(svc.Playlists))
	playlists.Patch("/remove/:videoId/:playlistId", auth, RemoveVideoFromPlaylist(svc.Playlists))
	playlists.Get("/:playlistId", GetPlaylist(svc.Playlists))
	playlists.Patch("/:playlistId", auth, UpdatePlaylist(svc.Playlists))
	playlists.Delete("/:playlistId", auth, DeletePlaylist(svc.Playlists))

	dashboard := api.Group("/dashboard", auth)
	dashboard.Get("/stats", ChannelStats(svc.Dashboard))
	dashboard.Get("/videos", ChannelVideos(svc.Dashboard))
}
