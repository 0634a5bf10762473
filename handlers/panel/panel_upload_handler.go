package handlers

import (
	"io"

	"github.com/sohryuu101/web-wedding-sub000/handlers"
	"github.com/sohryuu101/web-wedding-sub000/services"
	"github.com/sohryuu101/web-wedding-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

type PanelUploadHandler struct {
	service services.IUploadService
}

func NewPanelUploadHandler(service services.IUploadService) *PanelUploadHandler {
	return &PanelUploadHandler{service: service}
}

// Upload handles POST /upload (multipart "file", optional "folder").
func (h *PanelUploadHandler) Upload(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	fh, err := c.FormFile("file")
	if err != nil {
		return handlers.BadRequest(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return handlers.BadRequest(c, "file could not be read")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return handlers.BadRequest(c, "file could not be read")
	}

	res, err := h.service.Upload(c.UserContext(), userID, c.FormValue("folder"), fh.Filename, fh.Header.Get(fiber.HeaderContentType), data)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

type deleteUploadRequest struct {
	Path string `json:"path"`
}

// DeleteUpload handles DELETE /upload {path}.
func (h *PanelUploadHandler) DeleteUpload(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	var req deleteUploadRequest
	if err := c.BodyParser(&req); err != nil || req.Path == "" {
		return handlers.BadRequest(c, "path is required")
	}
	if err := h.service.Delete(c.UserContext(), userID, req.Path); err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "File deleted successfully"})
}
