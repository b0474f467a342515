// Package storage defines the Storage interface, the contract any
// database backend must satisfy to work with this application.
//
// Handlers depend only on this interface, never on a concrete backend.
// Switching databases means implementing the interface for the new
// backend and changing one line in main; handler tests pass a stub that
// satisfies the interface instead of a real database.
package storage

import "github.com/meera-joshi/student-registry/internal/types"

// Storage is the database contract.
type Storage interface {
	// CreateStudent inserts a new student record and returns the
	// persisted record including its generated identifier. Any
	// identifier on the input is ignored.
	CreateStudent(student types.Student) (types.Student, error)

	// ListStudents returns every student in the database ordered by
	// identifier. Returns an empty slice (not nil) if there are none.
	ListStudents() ([]types.Student, error)
}
