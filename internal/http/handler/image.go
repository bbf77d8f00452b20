package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/service"
	"blogapi/internal/storage"
)

// UploadImage stores an image file (multipart/form-data, field name: file)
// in object storage and returns a reference usable as a post image value.
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		ref, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			if err == service.ErrNotImage {
				return writeError(c, fiber.StatusBadRequest, "NOT_AN_IMAGE", "file must be an image")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusCreated).JSON(ref)
	}
}

// GetImage streams a previously uploaded image back to the caller.
func GetImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, info, err := svc.Open(c.UserContext(), c.Params("key"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrKeyTraversal):
				return writeError(c, fiber.StatusBadRequest, "INVALID_KEY", "invalid image key")
			case errors.Is(err, storage.ErrObjectNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "image not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}

		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		return c.SendStream(rc, int(info.Size))
	}
}
