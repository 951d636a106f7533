package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sinopos/storefront-api/internal/application/dto"
	"github.com/sinopos/storefront-api/internal/application/usecase"
)

// UploadHandler receives multipart image uploads for the admin panel.
type UploadHandler struct {
	uc *usecase.UploadUseCase
}

// NewUploadHandler builds the handler.
func NewUploadHandler(uc *usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

// Upload godoc
// @Summary      Upload one or more images; a failed file never aborts the batch
// @Tags         admin-uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Image files (field may repeat)"
// @Success      200    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "multipart form required"})
	}
	headers := form.File["files"]
	if len(headers) == 0 {
		headers = form.File["file"]
	}
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "at least one file is required"})
	}

	files := make([]usecase.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			// Surface the broken part as a failed entry, keep the batch going.
			files = append(files, usecase.UploadFile{Name: fh.Filename})
			continue
		}
		defer f.Close()
		files = append(files, usecase.UploadFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Body:        f,
		})
	}
	return c.JSON(h.uc.Upload(c.Context(), files))
}
