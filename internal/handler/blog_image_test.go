package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arittroskr32/CyberPiT-backend/internal/api"
	"github.com/Arittroskr32/CyberPiT-backend/internal/domain"
)

func newBlogImageHandler(svc *MockBlogService) *Handler {
	cfg := testConfig()
	cfg.Public.MaxImageUploadSize = 5 << 20
	cfg.Public.AllowedImageMimeTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}
	return New(nil, svc, nil, nil, nil, nil, nil, nil, nil, nil, cfg)
}

func imageUploadRequest(t *testing.T, field, filename, contentType string, payload []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/blogs/image", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadBlogImageHandler(t *testing.T) {
	t.Run("valid upload returns the stored path", func(t *testing.T) {
		svc := &MockBlogService{
			UploadImageFunc: func(upload *domain.PendingUpload) (string, error) {
				assert.Equal(t, "cover.png", upload.Filename)
				assert.Equal(t, "image/png", upload.MimeType)
				return "/images/abc123.png", nil
			},
		}
		h := newBlogImageHandler(svc)

		req := imageUploadRequest(t, "image", "cover.png", "image/png", []byte("png bytes"))
		rec := httptest.NewRecorder()
		h.UploadBlogImage(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var resp api.ImageUploadResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "/images/abc123.png", resp.ImageURL)
	})

	t.Run("non-image mime rejected", func(t *testing.T) {
		h := newBlogImageHandler(&MockBlogService{})

		req := imageUploadRequest(t, "image", "clip.mp4", "video/mp4", []byte("mp4 bytes"))
		rec := httptest.NewRecorder()
		h.UploadBlogImage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})

	t.Run("missing image field rejected", func(t *testing.T) {
		h := newBlogImageHandler(&MockBlogService{})

		req := imageUploadRequest(t, "file", "cover.png", "image/png", []byte("png bytes"))
		rec := httptest.NewRecorder()
		h.UploadBlogImage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Exactly one image file is required")
	})

	t.Run("oversized image rejected", func(t *testing.T) {
		h := newBlogImageHandler(&MockBlogService{})
		h.cfg.Public.MaxImageUploadSize = 16

		req := imageUploadRequest(t, "image", "cover.png", "image/png", bytes.Repeat([]byte("x"), 2<<20))
		rec := httptest.NewRecorder()
		h.UploadBlogImage(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "exceeds the limit")
	})
}
