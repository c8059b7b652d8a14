// Package response holds the JSON shapes returned to API clients.
package response

import (
	"net/http"

	"mirage/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// AuthResponse is the body of a successful register or login call.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

// UploadResponse is the body of a successful image upload.
type UploadResponse struct {
	Message string              `json:"message"`
	Image   *entity.ImageRecord `json:"image"`
}

// MessageResponse carries a single user-facing message.
type MessageResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ValidationResponse carries one message per failed input field.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// Auth writes an AuthResponse with the given status code.
func Auth(c echo.Context, statusCode int, token string, user *entity.User) error {
	return c.JSON(statusCode, AuthResponse{Token: token, User: user})
}

// Uploaded writes the 201 body for a completed upload.
func Uploaded(c echo.Context, record *entity.ImageRecord) error {
	return c.JSON(http.StatusCreated, UploadResponse{
		Message: "Image uploaded and analyzed successfully",
		Image:   record,
	})
}

// Message writes a bare message body with the given status code.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// ValidationFailed writes the 400 body listing every failed field.
func ValidationFailed(c echo.Context, messages []string) error {
	return c.JSON(http.StatusBadRequest, ValidationResponse{Errors: messages})
}
