// Package router owns the route table: the mapping from (method, path)
// pairs to handler functions. Registration lives here rather than in
// main so the full HTTP surface is visible in one place and can be
// built identically in tests.
package router

import (
	"net/http"

	"github.com/meera-joshi/student-registry/internal/http/handlers/student"
	"github.com/meera-joshi/student-registry/internal/storage"
	"github.com/meera-joshi/student-registry/internal/utils/response"
)

// route is one entry in the route table.
type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
}

// New builds the application router over the given storage backend.
//
// Route table:
//
//	POST /api/students  create a new student
//	GET  /api/students  list all students
//	GET  /healthz       liveness probe
//
// Unmatched methods and paths fall through to the ServeMux defaults.
func New(store storage.Storage) *http.ServeMux {
	routes := []route{
		{http.MethodPost, "/api/students", student.New(store)},
		{http.MethodGet, "/api/students", student.GetList(store)},
		{http.MethodGet, "/healthz", health},
	}

	mux := http.NewServeMux()
	for _, rt := range routes {
		mux.HandleFunc(rt.method+" "+rt.pattern, rt.handler)
	}

	return mux
}

// health reports process liveness. It deliberately touches no
// dependencies: a healthy process with a broken database still answers.
func health(w http.ResponseWriter, r *http.Request) {
	response.WriteJSON(w, http.StatusOK, map[string]string{"status": response.StatusOK})
}
