package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/internal/middleware"
)

func params(t *testing.T) HandlerParams {
	return HandlerParams{Log: zaptest.NewLogger(t)}
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestMessage(t *testing.T) {
	tests := map[string]string{
		"":          "Hello json",
		"lowercase": "Hello json",
		"UPPERCASE": "Hello json",
		"uppercase": "HELLO JSON",
	}

	for style, expected := range tests {
		t.Run(style, func(t *testing.T) {
			assert.Equal(t, expected, Message(style))
		})
	}
}

func unsetMessageStyle(t *testing.T) {
	// Setenv restores the previous value on cleanup
	t.Setenv(MessageStyleEnv, "")
	os.Unsetenv(MessageStyleEnv)
}

func TestMessageHandler_Default(t *testing.T) {
	unsetMessageStyle(t)

	w := serve(NewMessageHandler(params(t)), httptest.NewRequest(http.MethodGet, "/json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeJSON, w.Header().Get("Content-Type"))
	assert.Equal(t, `{"message":"Hello json"}`, w.Body.String())
}

func TestMessageHandler_Uppercase(t *testing.T) {
	t.Setenv(MessageStyleEnv, "uppercase")

	w := serve(NewMessageHandler(params(t)), httptest.NewRequest(http.MethodGet, "/json", nil))

	assert.Equal(t, `{"message":"HELLO JSON"}`, w.Body.String())
}

func TestMessageHandler_ReadsEnvPerRequest(t *testing.T) {
	h := NewMessageHandler(params(t))

	t.Setenv(MessageStyleEnv, "uppercase")
	w := serve(h, httptest.NewRequest(http.MethodGet, "/json", nil))
	assert.Equal(t, `{"message":"HELLO JSON"}`, w.Body.String())

	t.Setenv(MessageStyleEnv, "plain")
	w = serve(h, httptest.NewRequest(http.MethodGet, "/json", nil))
	assert.Equal(t, `{"message":"Hello json"}`, w.Body.String())
}

func TestNowHandler(t *testing.T) {
	fixed := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	h := middleware.Timestamp(func() time.Time { return fixed })(NewNowHandler(params(t)))

	w := serve(h, httptest.NewRequest(http.MethodGet, "/now", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"time":"Mon Oct 19 2026 12:00:00 GMT+0000 (UTC)"}`, w.Body.String())
}

func TestNowHandler_MissingTimestamp(t *testing.T) {
	w := serve(NewNowHandler(params(t)), httptest.NewRequest(http.MethodGet, "/now", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestEchoHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/freecodecamp/echo", nil)
	req.SetPathValue("word", "freecodecamp")

	w := serve(NewEchoHandler(params(t)), req)

	assert.Equal(t, `{"echo":"freecodecamp"}`, w.Body.String())
}

func TestEchoHandler_NoHTMLEscaping(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x/echo", nil)
	req.SetPathValue("word", "<b>&")

	w := serve(NewEchoHandler(params(t)), req)

	assert.Equal(t, `{"echo":"<b>&"}`, w.Body.String())
}

func TestNameHandler_Query(t *testing.T) {
	w := serve(NewNameHandler(params(t)), httptest.NewRequest(http.MethodGet, "/name?first=John&last=Doe", nil))

	assert.Equal(t, `{"name":"John Doe"}`, w.Body.String())
}

func TestNameHandler_QueryRepeatedKeys(t *testing.T) {
	w := serve(NewNameHandler(params(t)), httptest.NewRequest(http.MethodGet, "/name?first=John&first=Jim&last=Doe", nil))

	assert.Equal(t, `{"name":"John Doe"}`, w.Body.String())
}

func TestNameHandler_Form(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/name?first=Query", strings.NewReader("first=Jane&last=Roe"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := serve(middleware.URLEncoded(NewNameHandler(params(t))), req)

	assert.Equal(t, `{"name":"Jane Roe"}`, w.Body.String())
}

func TestIndexHandler_File(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>hi</h1>"), 0o644))

	h := NewIndexHandler(IndexHandlerParams{
		Config: config.Config{Assets: config.AssetsConfig{ViewsDir: dir}},
		Log:    zaptest.NewLogger(t),
	})

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>hi</h1>", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
}

func TestIndexHandler_Fallback(t *testing.T) {
	tests := map[string]string{
		"no views dir":  "",
		"missing index": t.TempDir(),
	}

	for name, dir := range tests {
		t.Run(name, func(t *testing.T) {
			h := NewIndexHandler(IndexHandlerParams{
				Config: config.Config{Assets: config.AssetsConfig{ViewsDir: dir}},
				Log:    zaptest.NewLogger(t),
			})

			w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Hello Express", w.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestIndexHandler_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "index.html"), 0o755))

	h := NewIndexHandler(IndexHandlerParams{
		Config: config.Config{Assets: config.AssetsConfig{ViewsDir: dir}},
		Log:    zaptest.NewLogger(t),
	})

	w := serve(h, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthHandler(t *testing.T) {
	w := serve(http.HandlerFunc(HealthHandler), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
