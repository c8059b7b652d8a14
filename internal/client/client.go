package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrSessionExpired is returned when the server rejects the held token. The
// session has already been logged out by the time callers see it.
var ErrSessionExpired = errors.New("session expired, please log in again")

// AnalysisResult mirrors the server's analysis payload.
type AnalysisResult struct {
	IsAI       bool           `json:"isAi"`
	Confidence float64        `json:"confidence"`
	Source     string         `json:"source"`
	Details    map[string]any `json:"details,omitempty"`
}

// ImageRecord mirrors the server's image record payload.
type ImageRecord struct {
	ID           string         `json:"id"`
	OriginalName string         `json:"originalName"`
	StoredFile   string         `json:"filePath"`
	MimeType     string         `json:"mimeType"`
	SizeBytes    int64          `json:"sizeBytes"`
	Analysis     AnalysisResult `json:"analysisResult"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  *Account `json:"user"`
}

type uploadResponse struct {
	Message string       `json:"message"`
	Image   *ImageRecord `json:"image"`
}

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// APIError is a non-2xx response from the server, already decoded.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// Client talks to the mirage HTTP API. The 401 reaction lives in a single
// place (the do method): any unauthorized response logs the session out and
// surfaces ErrSessionExpired, so individual operations never inspect auth
// failures themselves.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New builds a Client against the given base URL using the session for
// token storage.
func New(baseURL string, session *Session) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		session:    session,
	}
}

// do sends the request with the session token attached and runs the single
// 401 interceptor before anything else looks at the response.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		resp.Body.Close()
		if logoutErr := c.session.Logout(); logoutErr != nil {
			return nil, errors.Wrap(logoutErr, "failed to clear expired session")
		}

		return nil, ErrSessionExpired
	}

	return resp, nil
}

// decode reads the response, mapping non-2xx bodies to an APIError.
func decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp errorResponse
		messages := []string{http.StatusText(resp.StatusCode)}
		if json.Unmarshal(body, &errResp) == nil {
			if len(errResp.Errors) > 0 {
				messages = errResp.Errors
			} else if errResp.Message != "" {
				messages = []string{errResp.Message}
			}
		}

		return &APIError{StatusCode: resp.StatusCode, Messages: messages}
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.Unmarshal(body, out), "failed to decode response")
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// Register creates an account and stores the issued token in the session.
func (c *Client) Register(ctx context.Context, name, email, password string) (*Account, error) {
	resp, err := c.postJSON(ctx, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var auth authResponse
	if err := decode(resp, &auth); err != nil {
		return nil, err
	}

	if err := c.session.Login(auth.Token, auth.User); err != nil {
		return nil, err
	}

	return auth.User, nil
}

// Login authenticates and stores the issued token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*Account, error) {
	resp, err := c.postJSON(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	var auth authResponse
	if err := decode(resp, &auth); err != nil {
		return nil, err
	}

	if err := c.session.Login(auth.Token, auth.User); err != nil {
		return nil, err
	}

	return auth.User, nil
}

// Upload submits one image for analysis and returns the persisted record.
func (c *Client) Upload(ctx context.Context, filePath, method string, content io.Reader) (*ImageRecord, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filepath.Base(filePath)))
	header.Set("Content-Type", mimeTypeByExtension(filePath))
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build multipart body")
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, errors.Wrap(err, "failed to read image file")
	}

	if err := writer.WriteField("detectionMethod", method); err != nil {
		return nil, errors.Wrap(err, "failed to build multipart body")
	}
	if err := writer.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to build multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/upload", &buf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var out uploadResponse
	if err := decode(resp, &out); err != nil {
		return nil, err
	}

	return out.Image, nil
}

// Images fetches the account's records, newest first.
func (c *Client) Images(ctx context.Context) ([]ImageRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/images", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var records []ImageRecord
	if err := decode(resp, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// mimeTypeByExtension guesses the content type from the file name. The server
// re-checks the type, so a wrong guess fails loudly there.
func mimeTypeByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
