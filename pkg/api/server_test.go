package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/james-see/engrave/pkg/config"
	"github.com/james-see/engrave/pkg/converter"
	"github.com/james-see/engrave/pkg/document"
)

const melody = `
staff:
  name: Melody
  contents:
    - note: {pitch: "c'", duration: 1/4}
    - chord: {pitches: ["e'", "g'"], duration: 1/2}
    - rest: {duration: 1/4}
`

func testConfig() *config.Config {
	gin.SetMode(gin.TestMode)
	cfg := config.New()
	// never shell out to a real lilypond
	cfg.LilypondBinary = "engrave-test-missing-lilypond"
	return cfg
}

func do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	NewServer(testConfig()).Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func upload(t *testing.T, path, filename string, data []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHealth(t *testing.T) {
	for _, path := range []string{"/health", "/api/v1/health"} {
		w := do(t, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "healthy", decode(t, w)["status"])
	}
}

func TestCORSPreflight(t *testing.T) {
	w := do(t, httptest.NewRequest(http.MethodOptions, "/api/v1/render", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestFormats(t *testing.T) {
	w := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/formats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["conversions"], len(converter.GetSupportedConversions()))
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		pitch     string
		interval  string
		want      string
		semitones float64
	}{
		{"c'", "%2Bm3", "ef'", 3},
		{"c'", "-P5", "f", -7},
		{"b", "%2BM2", "cs'", 1},
		{"bss'", "%2BA2", "dss''", 16},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			w := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/transpose?pitch="+tt.pitch+"&interval="+tt.interval, nil))
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			body := decode(t, w)
			assert.Equal(t, tt.want, body["pitch"])
			assert.Equal(t, tt.semitones, body["semitones"])
		})
	}

	w := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/transpose?pitch=h&interval=M3", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w), "error")

	w = do(t, httptest.NewRequest(http.MethodGet, "/api/v1/transpose?pitch=c&interval=P2", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDescribeInterval(t *testing.T) {
	w := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/intervals/M9", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "+M9", body["interval"])
	assert.Equal(t, 14.0, body["semitones"])
	assert.Equal(t, 8.0, body["staff_spaces"])

	w = do(t, httptest.NewRequest(http.MethodGet, "/api/v1/intervals/X3", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSplitDuration(t *testing.T) {
	w := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/durations/split?duration=5/8", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, []interface{}{"1/2", "1/8"}, body["durations"])
	assert.Equal(t, []interface{}{"2", "8"}, body["lilypond"])

	w = do(t, httptest.NewRequest(http.MethodGet, "/api/v1/durations/split?duration=805306367/1073741824", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"1/2", "268435455/1073741824"}, decode(t, w)["durations"])

	for _, bad := range []string{"1/3", "-1/4", "x", "1/0", "1000000000000"} {
		w := do(t, httptest.NewRequest(http.MethodGet, "/api/v1/durations/split?duration="+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestRender(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/render", strings.NewReader(melody))
	req.Header.Set("Content-Type", "application/x-yaml")
	w := do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, strings.HasPrefix(w.Body.String(), "\\version \"2.24.0\"\n\\language \"english\"\n"))
	assert.Contains(t, w.Body.String(), "\\context Staff = \"Melody\" {\n  c'4\n")
	assert.Contains(t, w.Header().Get("Content-Type"), "text/x-lilypond")
}

func TestRenderTransposedJSON(t *testing.T) {
	doc, err := document.Decode([]byte(melody), document.YAML)
	require.NoError(t, err)
	data, err := document.Encode(doc, document.JSON)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/render?transpose=%2Bm3", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := do(t, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "ef'4\n")
	assert.Contains(t, w.Body.String(), "bf'\n")
}

func TestRenderErrors(t *testing.T) {
	tests := map[string]string{
		"bad interval": "/api/v1/render?transpose=P2",
		"bad document": "/api/v1/render",
	}
	for name, path := range tests {
		t.Run(name, func(t *testing.T) {
			body := "note: {pitch: c, duration: 1/3}"
			w := do(t, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}
}

func TestConvertUploads(t *testing.T) {
	midiData, err := converter.New(testConfig()).DocumentToMIDI([]byte(melody), document.YAML)
	require.NoError(t, err)

	w := do(t, upload(t, "/api/v1/convert/midi2ly", "melody.mid", midiData))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "attachment; filename=melody.ly", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), "\\new Score <<")

	w = do(t, upload(t, "/api/v1/convert/doc2midi", "melody.yaml", []byte(melody)))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "attachment; filename=melody.mid", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "MThd", w.Body.String()[:4])

	w = do(t, upload(t, "/api/v1/convert/doc2midi", "melody.yaml", []byte("note: {}")))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, httptest.NewRequest(http.MethodPost, "/api/v1/convert/midi2ly", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No file uploaded", decode(t, w)["error"])
}
