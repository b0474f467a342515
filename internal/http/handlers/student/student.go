// Package student contains the HTTP handlers for the Student resource.
//
// Handlers follow the closure/factory pattern: each exported function
// accepts its dependencies (the storage interface) and returns an
// http.HandlerFunc that closes over them. The factory runs once at
// route registration; the returned handler runs on every request and
// holds no mutable state of its own.
package student

import (
	"log/slog"
	"net/http"

	"github.com/meera-joshi/student-registry/internal/serializer"
	"github.com/meera-joshi/student-registry/internal/storage"
	"github.com/meera-joshi/student-registry/internal/utils/response"
)

// New handles POST /api/students.
//
// Request body:
//
//	{ "name": "Ada", "email": "ada@example.com", "age": 21 }
//
// Success (201 Created) is the full persisted record:
//
//	{ "id": 1, "name": "Ada", "email": "ada@example.com", "age": 21 }
//
// Validation failure (400 Bad Request) is a per-field error map:
//
//	{ "name": ["This field is required."] }
//
// An empty or malformed body is a 400 with the generic error envelope;
// a storage failure is a 500 with the same envelope.
func New(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		student, fieldErrs, err := serializer.BindStudent(r.Body)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}
		if len(fieldErrs) > 0 {
			response.WriteJSON(w, http.StatusBadRequest, fieldErrs)
			return
		}

		created, err := store.CreateStudent(student)
		if err != nil {
			slog.Error("error creating student",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.Int64("id", created.ID))

		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// GetList handles GET /api/students.
//
// Success (200 OK) is a JSON array of all students, ordered by id:
//
//	[ { "id": 1, "name": "Ada" }, { "id": 2, "name": "Grace" } ]
//
// An empty store yields an empty array [], not null. A storage failure
// is a 500 with the generic error envelope.
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := store.ListStudents()
		if err != nil {
			slog.Error("error getting students",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}
