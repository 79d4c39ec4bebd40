package service

import (
	"bytes"
	"encoding/base64"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"gatorkut/internal/config"
	"gatorkut/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
const tinyPNGBase64 = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

var uploadNameRe = regexp.MustCompile(`^/uploads/\d{13}-[0-9a-f]{6}\.[a-z]+$`)

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	return NewUploadService(&config.Config{
		UploadDir:   t.TempDir(),
		MaxUploadMB: 1,
	})
}

func TestSaveBase64RoundTrip(t *testing.T) {
	svc := newTestUploadService(t)

	url, err := svc.SaveBase64("data:image/png;base64," + tinyPNGBase64)
	require.NoError(t, err)
	assert.Regexp(t, uploadNameRe, url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The stored file must byte-match the decoded payload.
	want, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(svc.dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, want, stored)
}

func TestSaveBase64AlwaysWritesPNGExtension(t *testing.T) {
	svc := newTestUploadService(t)

	// The declared mime type does not influence the extension.
	url, err := svc.SaveBase64("data:image/jpeg;base64," + tinyPNGBase64)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestSaveBase64RejectsMalformedPayloads(t *testing.T) {
	svc := newTestUploadService(t)

	for _, raw := range []string{
		"",
		"not-a-data-uri",
		"data:image/png," + tinyPNGBase64,       // missing base64 marker
		"data:image/png;base64,not_valid_b64!!", // broken payload
		"data:image/png;base64,",                // empty payload
	} {
		_, err := svc.SaveBase64(raw)
		require.Error(t, err, "payload %q", raw)

		appErr, ok := err.(*models.AppError)
		require.True(t, ok)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	}
}

func TestSaveBase64RejectsOversizedPayload(t *testing.T) {
	svc := newTestUploadService(t)
	svc.maxBytes = 8

	_, err := svc.SaveBase64("data:image/png;base64," + tinyPNGBase64)
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func TestSaveMultipartKeepsOriginalExtension(t *testing.T) {
	svc := newTestUploadService(t)

	payload, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("image", "gator.JPG")
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	defer func() { _ = form.RemoveAll() }()

	fh := form.File["image"][0]
	url, err := svc.SaveMultipart(fh)
	require.NoError(t, err)
	assert.Regexp(t, uploadNameRe, url)
	assert.True(t, strings.HasSuffix(url, ".jpg"), "extension should be lowercased: %s", url)

	stored, err := os.ReadFile(filepath.Join(svc.dir, filepath.Base(url)))
	require.NoError(t, err)
	assert.Equal(t, payload, stored)
}

func TestSaveMultipartUnwritableDirIsStorageError(t *testing.T) {
	svc := NewUploadService(&config.Config{
		UploadDir:   "/proc/no-such-place/uploads",
		MaxUploadMB: 1,
	})

	payload, err := base64.StdEncoding.DecodeString(tinyPNGBase64)
	require.NoError(t, err)

	_, err = svc.SaveBase64("data:image/png;base64," + base64.StdEncoding.EncodeToString(payload))
	require.Error(t, err)

	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, models.CodeStorage, appErr.Code)
}
