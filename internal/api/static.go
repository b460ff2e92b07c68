package api

import (
	"net/http"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// serveFrontend serves the built frontend from dir. Only regular files are
// served as-is; directories and paths with no file behind them, such as
// /players/{id}, get index.html so the client router can draw the view.
func serveFrontend(r chi.Router, dir string) {
	root := http.Dir(dir)
	files := http.FileServer(root)
	index := filepath.Join(dir, "index.html")

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		if isFile(root, path.Clean(req.URL.Path)) {
			files.ServeHTTP(w, req)
			return
		}
		http.ServeFile(w, req, index)
	})
}

func isFile(root http.FileSystem, name string) bool {
	f, err := root.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
