package httpapi

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func solidPNG(t *testing.T, width, height int, y uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = y
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

type namedFile struct {
	field    string
	filename string
	content  []byte
}

// multipartRequest builds a multipart/form-data POST with one part per
// entry in files (field name and filename can differ, since stegocore
// dispatches on the uploaded filename's extension) plus one field per
// entry in fields.
func multipartRequest(t *testing.T, path string, files []namedFile, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		fw, err := w.CreateFormFile(f.field, f.filename)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write(f.content); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHealthHandler(t *testing.T) {
	r := NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", rec.Code)
	}
	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Fatalf("got status %q, want healthy", resp.Status)
	}
}

func TestEmbedExtractRoundTrip(t *testing.T) {
	r := NewRouter()
	cover := solidPNG(t, 64, 64, 128)

	embedReq := multipartRequest(t, "/api/v1/embed",
		[]namedFile{{"cover", "cover.png", cover}, {"payload", "payload.bin", []byte("top secret")}},
		map[string]string{"passphrase": "hunter2"})

	embedRec := httptest.NewRecorder()
	r.ServeHTTP(embedRec, embedReq)
	if embedRec.Code != http.StatusOK {
		t.Fatalf("embed: got status %d, body %s", embedRec.Code, embedRec.Body.String())
	}

	keyFileB64 := embedRec.Header().Get("X-Key-File")
	if keyFileB64 == "" {
		t.Fatalf("embed response missing X-Key-File header")
	}
	stegoBytes := embedRec.Body.Bytes()

	extractReq := multipartRequest(t, "/api/v1/extract",
		[]namedFile{{"stego", "stego.png", stegoBytes}},
		map[string]string{"passphrase": "hunter2", "key_file": keyFileB64})

	extractRec := httptest.NewRecorder()
	r.ServeHTTP(extractRec, extractReq)
	if extractRec.Code != http.StatusOK {
		t.Fatalf("extract: got status %d, body %s", extractRec.Code, extractRec.Body.String())
	}
	if got := extractRec.Body.String(); got != "top secret" {
		t.Fatalf("got payload %q, want %q", got, "top secret")
	}
}

func TestExtractWrongPassphrase(t *testing.T) {
	r := NewRouter()
	cover := solidPNG(t, 64, 64, 128)

	embedReq := multipartRequest(t, "/api/v1/embed",
		[]namedFile{{"cover", "cover.png", cover}, {"payload", "payload.bin", []byte("x")}},
		map[string]string{"passphrase": "correct horse"})
	embedRec := httptest.NewRecorder()
	r.ServeHTTP(embedRec, embedReq)
	if embedRec.Code != http.StatusOK {
		t.Fatalf("embed: got status %d", embedRec.Code)
	}
	keyFileB64 := embedRec.Header().Get("X-Key-File")

	extractReq := multipartRequest(t, "/api/v1/extract",
		[]namedFile{{"stego", "stego.png", embedRec.Body.Bytes()}},
		map[string]string{"passphrase": "wrong password", "key_file": keyFileB64})
	extractRec := httptest.NewRecorder()
	r.ServeHTTP(extractRec, extractReq)
	if extractRec.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", extractRec.Code)
	}
}

func TestCapacityHandler(t *testing.T) {
	r := NewRouter()
	cover := solidPNG(t, 32, 32, 10)

	req := multipartRequest(t, "/api/v1/capacity",
		[]namedFile{{"cover", "cover.png", cover}},
		map[string]string{"mode": "sequential"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", rec.Code, rec.Body.String())
	}
	var resp CapacityResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.AvailableBytes <= 0 {
		t.Fatalf("got AvailableBytes %d, want > 0", resp.AvailableBytes)
	}
}

func TestEmbedMissingFileReturnsBadRequest(t *testing.T) {
	r := NewRouter()
	req := multipartRequest(t, "/api/v1/embed", nil, map[string]string{"passphrase": "x"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d, want 400", rec.Code)
	}
}
