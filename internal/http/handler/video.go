package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vidtube/internal/http/middleware"
	"vidtube/internal/service"
)

// ListVideos godoc
// @Summary  List published videos
// @Tags     videos
// @Produce  json
// @Param    page     query int    false "Page number"
// @Param    limit    query int    false "Page size (max 100)"
// @Param    query    query string false "Search in title and description"
// @Param    userId   query string false "Owner ID"
// @Param    sortBy   query string false "createdAt, views, duration or title"
// @Param    sortType query string false "asc or desc"
// @Success  200 {object} envelope
// @Failure  400 {object} errorPayload
// @Router   /api/v1/videos [get]
func ListVideos(svc service.VideoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := pageRequest(c)
		if err != nil {
			return writePageError(c, err)
		}
		res, err := svc.List(c.UserContext(), service.VideoListInput{
			Query:    c.Query("query"),
			UserID:   c.Query("userId"),
			SortBy:   c.Query("sortBy"),
			SortType: c.Query("sortType"),
			Page:     page,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Videos fetched successfully", res)
	}
}

// PublishVideo godoc
// @Summary  Upload and publish a video
// @Tags     videos
// @Accept   multipart/form-data
// @Produce  json
// @Param    title       formData string true "Title"
// @Param    description formData string true "Description"
// @Param    duration    formData number false "Duration in seconds"
// @Param    videoFile   formData file   true "Video file"
// @Param    thumbnail   formData file   true "Thumbnail image"
// @Success  201 {object} envelope
// @Failure  400 {object} errorPayload
// @Router   /api/v1/videos [post]
func PublishVideo(svc service.VideoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var duration float64
		if raw := c.FormValue("duration"); raw != "" {
			d, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "INVALID_DURATION", "duration must be a number")
			}
			duration = d
		}

		video, closeVideo, err := formFile(c, "videoFile")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeVideo()
		thumb, closeThumb, err := formFile(c, "thumbnail")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeThumb()

		v, err := svc.Publish(c.UserContext(), middleware.UserID(c), service.PublishVideoInput{
			Title:       c.FormValue("title"),
			Description: c.FormValue("description"),
			Duration:    duration,
			Video:       video,
			Thumbnail:   thumb,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusCreated, "Video published successfully", v)
	}
}

func GetVideo(svc service.VideoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.Get(c.UserContext(), c.Params("videoId"), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Video fetched successfully", v)
	}
}

// UpdateVideo accepts title and description as JSON or form fields and an
// optional thumbnail file.
func UpdateVideo(svc service.VideoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Title       *string `json:"title" form:"title"`
			Description *string `json:"description" form:"description"`
		}
		if err := parseBody(c, &body); err != nil {
			return writeBodyError(c)
		}
		thumb, closeThumb, err := formFile(c, "thumbnail")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer closeThumb()

		v, err := svc.Update(c.UserContext(), c.Params("videoId"), middleware.UserID(c), service.UpdateVideoInput{
			Title:       body.Title,
			Description: body.Description,
			Thumbnail:   thumb,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Video updated successfully", v)
	}
}

func DeleteVideo(svc service.VideoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("videoId"), middleware.UserID(c)); err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Video deleted successfully", nil)
	}
}

func TogglePublishStatus(svc service.VideoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		v, err := svc.TogglePublish(c.UserContext(), c.Params("videoId"), middleware.UserID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return respond(c, fiber.StatusOK, "Publish status toggled successfully", fiber.Map{
			"_id":         v.ID,
			"isPublished": v.IsPublished,
		})
	}
}
