package handler

import (
	"log/slog"
	"net/http"

	"mirage/internal/delivery/http/response"
	"mirage/internal/domain/entity"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImageHandler holds dependencies for the upload and listing endpoints.
type ImageHandler struct {
	uc     usecase.ImageUsecase
	logger *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(uc usecase.ImageUsecase, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{uc: uc, logger: logger}
}

// ownerID extracts the authenticated account from the request context. The
// auth middleware always sets it; a miss means the route was wired wrong.
func ownerID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrInvalidToken
	}

	return id, nil
}

// Upload handles a multipart image upload followed by a detection run.
// Field "image" carries the file and "detectionMethod" selects the analysis.
func (h *ImageHandler) Upload(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("no image file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	record, err := h.uc.Upload(c.Request().Context(), &usecase.UploadInput{
		OwnerID:      owner,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		SizeBytes:    fileHeader.Size,
		Method:       entity.DetectionMethod(c.FormValue("detectionMethod")),
		Content:      file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Uploaded(c, record)
}

// List returns the authenticated account's image records, newest first.
func (h *ImageHandler) List(c echo.Context) error {
	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	records, err := h.uc.ListForOwner(c.Request().Context(), owner)
	if err != nil {
		return errors.WithStack(err)
	}

	if records == nil {
		records = []*entity.ImageRecord{}
	}

	return c.JSON(http.StatusOK, records)
}
