package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// at the root. Mount it with http.StripPrefix; named profiles such as /heap
// are served by pprof.Handler.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	mux.HandleFunc("/{profile}", func(w http.ResponseWriter, r *http.Request) {
		pprof.Handler(r.PathValue("profile")).ServeHTTP(w, r)
	})

	return mux
}
