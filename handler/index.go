package handler

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/config"
)

const (
	indexFile     = "index.html"
	indexFallback = "Hello Express"
)

type IndexHandlerParams struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
}

// IndexHandler serves the index document from the views dir, or a
// plain greeting when there is none.
type IndexHandler struct {
	path string
	log  *zap.Logger
}

func NewIndexHandler(params IndexHandlerParams) *IndexHandler {
	var path string
	if params.Config.Assets.ViewsDir != "" {
		path = filepath.Join(params.Config.Assets.ViewsDir, indexFile)
	}

	return &IndexHandler{
		path: path,
		log:  params.Log,
	}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.path == "" {
		h.serveFallback(w)
		return
	}

	f, err := os.Open(h.path)
	if errors.Is(err, fs.ErrNotExist) {
		h.log.Debug("index document not found", zap.String("file", h.path))
		h.serveFallback(w)
		return
	}
	if err != nil {
		h.log.Error("failed to open index document", zap.String("file", h.path), zap.Error(err))
		http.Error(w, "failed to open index document", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		h.log.Error("index document is not a file", zap.String("file", h.path), zap.Error(err))
		http.Error(w, "failed to read index document", http.StatusInternalServerError)
		return
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}

func (h *IndexHandler) serveFallback(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(indexFallback)); err != nil {
		h.log.Debug("failed to write response", zap.Error(err))
	}
}
