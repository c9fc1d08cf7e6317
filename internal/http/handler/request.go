package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"vidtube/internal/service"
)

var (
	errInvalidPage  = errors.New("invalid page")
	errInvalidLimit = errors.New("invalid limit")
	errInvalidBody  = errors.New("invalid request body")
)

// pageRequest reads page and limit from the query string. Missing values
// use the defaults; non-numeric values are rejected.
func pageRequest(c *fiber.Ctx) (service.PageRequest, error) {
	page, err := queryInt(c, "page", service.DefaultPage)
	if err != nil {
		return service.PageRequest{}, errInvalidPage
	}
	limit, err := queryInt(c, "limit", service.DefaultLimit)
	if err != nil {
		return service.PageRequest{}, errInvalidLimit
	}
	return service.PageRequest{Page: page, Limit: limit}, nil
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func writePageError(c *fiber.Ctx, err error) error {
	code := "INVALID_PAGE"
	if errors.Is(err, errInvalidLimit) {
		code = "INVALID_LIMIT"
	}
	return writeError(c, fiber.StatusBadRequest, code, err.Error())
}

// parseBody decodes a JSON, urlencoded or multipart body into out. An
// empty body leaves out untouched.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return errInvalidBody
	}
	return nil
}

func writeBodyError(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", errInvalidBody.Error())
}

// formFile opens an uploaded file. A missing field yields a nil upload
// so the service can report which file is required.
func formFile(c *fiber.Ctx, field string) (*service.Upload, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, func() {}, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, err
	}
	ct := fh.Header.Get(fiber.HeaderContentType)
	if ct == "" {
		ct = "application/octet-stream"
	}
	return &service.Upload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: ct,
		Size:        fh.Size,
	}, func() { f.Close() }, nil
}
