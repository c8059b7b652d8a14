package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	deliverymw "mirage/internal/delivery/http/middleware"
	"mirage/internal/domain/entity"
	domainerrors "mirage/internal/domain/errors"
	"mirage/internal/domain/service"
	mockSvc "mirage/internal/mocks/service"
	mockUsecase "mirage/internal/mocks/usecase"
	"mirage/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imageRoutes wires the image endpoints behind the auth middleware the same
// way the router does.
func imageRoutes(t *testing.T, uc usecase.ImageUsecase, tokenSvc service.TokenService) *echo.Echo {
	t.Helper()

	e := newTestEcho(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	group := e.Group("/images")
	group.Use(deliverymw.NewAuthMiddleware(tokenSvc).Authenticate)
	h := NewImageHandler(uc, logger)
	group.POST("/upload", h.Upload)
	group.GET("", h.List)

	return e
}

// authorizedToken returns a token service mock accepting "good-token" for the
// given account.
func authorizedToken(t *testing.T, ownerID uuid.UUID) service.TokenService {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.On("Validate", "good-token").Return(&service.Claims{UserID: ownerID}, nil).Maybe()
	tokenSvc.On("Validate", mock.Anything).Return(nil, domainerrors.ErrInvalidToken).Maybe()

	return tokenSvc
}

// multipartUpload builds a multipart body with an image part and a
// detectionMethod field.
func multipartUpload(t *testing.T, fileName, contentType, method string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)

	require.NoError(t, writer.WriteField("detectionMethod", method))
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestImageHandler_Upload_Success(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockImageUsecase(t)

	record := &entity.ImageRecord{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		OriginalName: "portrait.jpg",
		StoredFile:   "abc123.jpg",
		MimeType:     "image/jpeg",
		SizeBytes:    16,
		Analysis: entity.AnalysisResult{
			IsAI:       false,
			Confidence: 91.2,
			Source:     entity.SourceBasicModel,
		},
		CreatedAt: time.Now(),
	}

	uc.On("Upload", mock.Anything, mock.MatchedBy(func(input *usecase.UploadInput) bool {
		return input.OwnerID == ownerID &&
			input.OriginalName == "portrait.jpg" &&
			input.MimeType == "image/jpeg" &&
			input.Method == entity.DetectionBasic
	})).Return(record, nil)

	e := imageRoutes(t, uc, authorizedToken(t, ownerID))

	body, contentType := multipartUpload(t, "portrait.jpg", "image/jpeg", "basic", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string              `json:"message"`
		Image   *entity.ImageRecord `json:"image"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, record.ID, resp.Image.ID)
	assert.Equal(t, "abc123.jpg", resp.Image.StoredFile)
}

func TestImageHandler_Upload_MissingToken(t *testing.T) {
	uc := mockUsecase.NewMockImageUsecase(t)
	e := imageRoutes(t, uc, authorizedToken(t, uuid.New()))

	body, contentType := multipartUpload(t, "portrait.jpg", "image/jpeg", "basic", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authorized"}`, rec.Body.String())
	uc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestImageHandler_Upload_BadToken(t *testing.T) {
	uc := mockUsecase.NewMockImageUsecase(t)
	e := imageRoutes(t, uc, authorizedToken(t, uuid.New()))

	body, contentType := multipartUpload(t, "portrait.jpg", "image/jpeg", "basic", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer forged-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	// Same body as a missing token: the boundary does not say which check failed.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authorized"}`, rec.Body.String())
}

func TestImageHandler_Upload_NoFile(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockImageUsecase(t)
	e := imageRoutes(t, uc, authorizedToken(t, ownerID))

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("detectionMethod", "basic"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/images/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestImageHandler_Upload_InvalidMethod(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockImageUsecase(t)
	uc.On("Upload", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidDetectionMethod)

	e := imageRoutes(t, uc, authorizedToken(t, ownerID))

	body, contentType := multipartUpload(t, "portrait.jpg", "image/jpeg", "sorcery", []byte("fake image bytes"))
	req := httptest.NewRequest(http.MethodPost, "/images/upload", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid detection method, use 'basic' or 'advanced'"}`, rec.Body.String())
}

func TestImageHandler_List_Success(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockImageUsecase(t)

	now := time.Now()
	records := []*entity.ImageRecord{
		{ID: uuid.New(), OwnerID: ownerID, OriginalName: "b.png", CreatedAt: now},
		{ID: uuid.New(), OwnerID: ownerID, OriginalName: "a.png", CreatedAt: now.Add(-time.Hour)},
	}
	uc.On("ListForOwner", mock.Anything, ownerID).Return(records, nil)

	e := imageRoutes(t, uc, authorizedToken(t, ownerID))

	req := httptest.NewRequest(http.MethodGet, "/images", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []*entity.ImageRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "b.png", resp[0].OriginalName, "newest record comes first")
}

func TestImageHandler_List_Empty(t *testing.T) {
	ownerID := uuid.New()
	uc := mockUsecase.NewMockImageUsecase(t)
	uc.On("ListForOwner", mock.Anything, ownerID).Return(nil, nil)

	e := imageRoutes(t, uc, authorizedToken(t, ownerID))

	req := httptest.NewRequest(http.MethodGet, "/images", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String(), "an account with no uploads gets an empty list, not null")
}
