package middleware

import (
	"net/http"
	"path"
	"strings"
)

// Static serves files below dir for requests under prefix. Requests
// for files that do not exist fall through to next, and so do dotfiles.
// Directories are served only when they contain an index.html.
func Static(prefix, dir string) Middleware {
	prefix = "/" + strings.Trim(prefix, "/")
	root := http.Dir(dir)
	files := http.StripPrefix(prefix, http.FileServer(root))

	return func(next http.Handler) http.Handler {
		if dir == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			name, ok := strings.CutPrefix(r.URL.Path, prefix+"/")
			if !ok || hidden(name) || !exists(root, name) {
				next.ServeHTTP(w, r)
				return
			}

			files.ServeHTTP(w, r)
		})
	}
}

// exists reports whether name resolves to a servable file in root.
// http.Dir confines the lookup to root.
func exists(root http.FileSystem, name string) bool {
	f, err := root.Open("/" + name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}

	if !info.IsDir() {
		return true
	}

	return exists(root, path.Join(name, "index.html"))
}

// hidden reports whether any segment of name is a dotfile.
func hidden(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
