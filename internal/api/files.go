package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// FileServer conveniently sets up a http.FileServer handler to serve
// static files from a http.FileSystem.
func FileServer(r chi.Router, path string, root http.FileSystem) {
	if strings.ContainsAny(path, "{}*") {
		panic("FileServer does not permit URL parameters.")
	}

	if path != "/" && path[len(path)-1] != '/' {
		r.Get(path, http.RedirectHandler(path+"/", http.StatusMovedPermanently).ServeHTTP)
		path += "/"
	}
	path += "*"

	r.Get(path, func(w http.ResponseWriter, req *http.Request) {
		rctx := chi.RouteContext(req.Context())
		pathPrefix := strings.TrimSuffix(rctx.RoutePattern(), "/*")
		fs := http.StripPrefix(pathPrefix, http.FileServer(root))
		fs.ServeHTTP(w, req)
	})
}

// etag tags successful responses with the catalog revision and answers
// 304 when the client already holds it. Error responses carry no tag. The
// tag is weak since Compress may re-encode the body.
func (s *Server) etag(next http.Handler) http.Handler {
	tag := `W/"` + s.catalog.Revision() + `"`
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(&etagWriter{
			ResponseWriter: w,
			tag:            tag,
			match:          etagMatch(r.Header.Get("If-None-Match"), tag),
		}, r)
	})
}

type etagWriter struct {
	http.ResponseWriter
	tag         string
	match       bool
	wroteHeader bool
	discard     bool
}

func (w *etagWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if status == http.StatusOK {
		w.Header().Set("ETag", w.tag)
		if w.match {
			w.discard = true
			w.Header().Del("Content-Type")
			w.Header().Del("Content-Length")
			w.ResponseWriter.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *etagWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.discard {
		return len(b), nil
	}
	return w.ResponseWriter.Write(b)
}

// etagMatch compares If-None-Match candidates with the weak comparison
func etagMatch(header, tag string) bool {
	if header == "" {
		return false
	}
	opaque := strings.TrimPrefix(tag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == "*" || candidate == opaque {
			return true
		}
	}
	return false
}
