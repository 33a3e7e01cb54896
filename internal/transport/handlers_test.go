package transport

import (
	"bytes"
	"encoding/json"
	"image/color"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dermassist/backend/internal/entity"
	"github.com/dermassist/backend/internal/pkg/kafka"
	"github.com/dermassist/backend/internal/service"
)

var conditionNames = []string{
	"Acne Vulgaris",
	"Eczema (Atopic Dermatitis)",
	"Psoriasis",
	"Benign Nevus (Mole)",
	"Contact Dermatitis",
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewHandler(
		service.NewAnalyzerService(),
		service.NewDiagnosticService(nil),
		kafka.NewProducer("", "analysis-events"),
		"analysis-events",
	)
	return InitRoutes(handler)
}

// newUploadRequest builds a multipart POST /analyze with one file field
func newUploadRequest(t *testing.T, fieldName, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(fieldName, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

// jpegBytes encodes a solid-color image so uploads carry a real JPEG body
func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 180, G: 120, B: 90, A: 255})

	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG))
	return buf.Bytes()
}

func TestRootEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello from DermAssist Backend!"}`, w.Body.String())
}

func TestHelloEndpoint(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "Hello from the backend API!"}`, w.Body.String())
}

func TestTestEndpointWithoutDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var report entity.DiagnosticReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	assert.Equal(t, "✅ Running", report.Backend)
	assert.Contains(t, report.Database, "not configured")
	assert.Equal(t, "❌ Not Set", report.DatabaseURL)
	assert.Empty(t, report.Collections)
}

func TestAnalyzeMissingFileField(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name    string
		request func() *http.Request
	}{
		{
			name: "no body at all",
			request: func() *http.Request {
				return httptest.NewRequest(http.MethodPost, "/analyze", nil)
			},
		},
		{
			name: "multipart form without file field",
			request: func() *http.Request {
				var body bytes.Buffer
				writer := multipart.NewWriter(&body)
				require.NoError(t, writer.WriteField("note", "not a file"))
				require.NoError(t, writer.Close())

				req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
				req.Header.Set("Content-Type", writer.FormDataContentType())
				return req
			},
		},
		{
			name: "wrong field name",
			request: func() *http.Request {
				return newUploadRequest(t, "image", "photo.jpg", []byte{1, 2, 3})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, tt.request())

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "No file uploaded"}`, w.Body.String())
		})
	}
}

func TestAnalyzeEmptyFile(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "file", "empty.jpg", []byte{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Empty file uploaded"}`, w.Body.String())
}

func TestAnalyzeJPEGUpload(t *testing.T) {
	router := newTestRouter()

	content := jpegBytes(t, 64, 64)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "file", "lesion.jpg", content))

	require.Equal(t, http.StatusOK, w.Code)

	var result entity.AnalysisResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

	assert.Contains(t, conditionNames, result.Condition)
	assert.NotEmpty(t, result.Description)
	assert.Len(t, result.Suggestions, 3)
	assert.Greater(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 98.0)
	assert.GreaterOrEqual(t, result.LatencyMS, int64(0))
	assert.Equal(t, "lesion.jpg", result.Filename)
	assert.Greater(t, result.SizeKB, 0.0)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	router := newTestRouter()

	content := jpegBytes(t, 128, 96)

	var first entity.AnalysisResponse
	var second entity.AnalysisResponse

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "file", "a.jpg", content))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "file", "a.jpg", content))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))

	assert.Equal(t, first.Condition, second.Condition)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.SizeKB, second.SizeKB)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	req.Header.Set("Origin", "https://dermassist.example")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://dermassist.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/hello", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// a client-supplied id is kept
	req := httptest.NewRequest(http.MethodGet, "/api/hello", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get("X-Request-ID"))
}
