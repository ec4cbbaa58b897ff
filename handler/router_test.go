package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/handler"
	"github.com/lambda-feedback/greeter/internal/middleware"
	"github.com/lambda-feedback/greeter/internal/server"
)

type testApp struct {
	handler http.Handler
	logs    *observer.ObservedLogs
}

// newTestApp wires routes and middleware the way the app does.
func newTestApp(t *testing.T) *testApp {
	root := t.TempDir()
	views := filepath.Join(root, "views")
	public := filepath.Join(root, "public")

	require.NoError(t, os.MkdirAll(views, 0o755))
	require.NoError(t, os.MkdirAll(public, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(views, "index.html"), []byte("<h1>index</h1>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(public, "style.css"), []byte("body {}"), 0o644))

	core, logs := observer.New(zapcore.InfoLevel)

	cfg := config.Config{
		Assets: config.AssetsConfig{
			ViewsDir:  views,
			PublicDir: public,
		},
	}

	var h http.Handler
	app := fxtest.New(t,
		fx.Supply(cfg),
		fx.Supply(zap.New(core)),
		handler.Module(),
		middleware.Module(),
		fx.Provide(server.NewRouter),
		fx.Populate(&h),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return &testApp{handler: h, logs: logs}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	req.RemoteAddr = "198.51.100.4:40000"
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(target string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, target, nil))
}

func (a *testApp) accessLines() []string {
	var lines []string
	for _, entry := range a.logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == "access"
	}).All() {
		lines = append(lines, entry.Message)
	}
	return lines
}

func requireSchema(t *testing.T, name string, body []byte) {
	schema, err := os.ReadFile(filepath.Join("testdata", name+".schema.json"))
	require.NoError(t, err)

	res, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(body),
	)
	require.NoError(t, err)
	require.True(t, res.Valid(), "%s: %v", name, res.Errors())
}

func TestRouter_Index(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>index</h1>", w.Body.String())
}

func TestRouter_Public(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/public/style.css")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "body {}", w.Body.String())
}

func TestRouter_PublicMissingFallsThrough(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, http.StatusNotFound, app.get("/public/nope.css").Code)

	// same as express: a missing asset can still hit a route
	w := app.get("/public/echo")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"echo":"public"}`, w.Body.String())
}

func TestRouter_JSON(t *testing.T) {
	app := newTestApp(t)

	t.Setenv(handler.MessageStyleEnv, "")
	os.Unsetenv(handler.MessageStyleEnv)

	w := app.get("/json")
	assert.Equal(t, `{"message":"Hello json"}`, w.Body.String())
	requireSchema(t, "message", w.Body.Bytes())

	t.Setenv(handler.MessageStyleEnv, "uppercase")

	w = app.get("/json")
	assert.Equal(t, `{"message":"HELLO JSON"}`, w.Body.String())
	requireSchema(t, "message", w.Body.Bytes())
}

func TestRouter_Now(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/now")
	require.Equal(t, http.StatusOK, w.Code)
	requireSchema(t, "now", w.Body.Bytes())

	var res map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	stamp, err := time.Parse(middleware.DateLayout, res["time"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), stamp, 5*time.Second)
}

func TestRouter_Echo(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/freecodecamp/echo")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"echo":"freecodecamp"}`, w.Body.String())
	requireSchema(t, "echo", w.Body.Bytes())
}

func TestRouter_Name(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/name?first=John&last=Doe")
	assert.Equal(t, `{"name":"John Doe"}`, w.Body.String())
	requireSchema(t, "name", w.Body.Bytes())

	req := httptest.NewRequest(http.MethodPost, "/name", strings.NewReader("first=John&last=Doe"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w = app.do(req)
	assert.Equal(t, `{"name":"John Doe"}`, w.Body.String())
	requireSchema(t, "name", w.Body.Bytes())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	w := app.do(httptest.NewRequest(http.MethodPost, "/json", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_LogsEveryRequestOnce(t *testing.T) {
	app := newTestApp(t)

	app.get("/json")
	app.get("/public/style.css")
	app.get("/missing/route/entirely")
	app.do(httptest.NewRequest(http.MethodPost, "/name", nil))

	assert.Equal(t, []string{
		"GET /json - 198.51.100.4",
		"GET /public/style.css - 198.51.100.4",
		"GET /missing/route/entirely - 198.51.100.4",
		"POST /name - 198.51.100.4",
	}, app.accessLines())
}

func TestRouter_RequestID(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
