package handler

import (
	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/service"
)

func CreatePlaylist(svc service.PlaylistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CreatePlaylistInput
		if err := parseBody(c, &in); err != nil {
			return writeBodyError(c)
		}
		p, err := svc.Create(c.UserContext(), middleware.UserID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusCreated, "Playlist created successfully", p)
	}
}

func UserPlaylists(svc service.PlaylistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.ListByUser(c.UserContext(), c.Params("userId"), page)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "User playlists fetched successfully", res)
	}
}

func GetPlaylist(svc service.PlaylistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.Get(c.UserContext(), c.Params("playlistId"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Playlist fetched successfully", p)
	}
}

func AddVideoToPlaylist(svc service.PlaylistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.AddVideo(c.UserContext(), c.Params("videoId"), c.Params("playlistId"), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Video added to playlist successfully", p)
	}
}

func RemoveVideoFromPlaylist(svc service.PlaylistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.RemoveVideo(c.UserContext(), c.Params("videoId"), c.Params("playlistId"), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Video removed from playlist successfully", p)
	}
}

func UpdatePlaylist(svc service.PlaylistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdatePlaylistInput
		if err := parseBody(c, &in); err != nil {
			return writeBodyError(c)
		}
		p, err := svc.Update(c.UserContext(), c.Params("playlistId"), middleware.UserID(c), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Playlist updated successfully", p)
	}
}

func DeletePlaylist(svc service.PlaylistService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("playlistId"), middleware.UserID(c)); err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Playlist deleted successfully", nil)
	}
}
