package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// spaHandler serves the built frontend from dir. Paths that do not name a
// file get index.html so client-side routes survive a reload. API prefixes
// never fall back to the frontend.
func spaHandler(dir string) http.HandlerFunc {
	root := http.Dir(dir)
	files := http.FileServer(root)
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		name := path.Clean("/" + r.URL.Path)
		if isAPIPath(name) {
			notFound(w, r)
			return
		}

		f, err := root.Open(name)
		if err == nil {
			stat, statErr := f.Stat()
			_ = f.Close()
			if statErr == nil && !stat.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			writeError(w, r, err)
			return
		}

		if _, err = os.Stat(index); err != nil {
			notFound(w, r)
			return
		}
		http.ServeFile(w, r, index)
	}
}

func isAPIPath(p string) bool {
	return p == "/api" || strings.HasPrefix(p, "/api/") ||
		p == "/admin/api" || strings.HasPrefix(p, "/admin/api/")
}
