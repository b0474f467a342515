// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using database/sql.
//
// SQLite stores everything in a single file on disk, so it is the
// default backend: no server process, no setup beyond the driver. The
// blank import below registers the sqlite3 driver with database/sql as
// a side effect of package initialisation.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meera-joshi/student-registry/internal/config"
	"github.com/meera-joshi/student-registry/internal/types"
)

// SQLite implements storage.Storage. The embedded *sql.DB is a
// connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.Storage.SQLitePath, creates the
// students table if it does not already exist, and returns a
// ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.Storage.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Idempotent schema bootstrap: safe to run on every startup.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id    INTEGER PRIMARY KEY AUTOINCREMENT,
			name  TEXT    NOT NULL,
			email TEXT    NOT NULL DEFAULT '',
			age   INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// CreateStudent inserts a new row and returns the record with the
// auto-generated primary key filled in.
func (s *SQLite) CreateStudent(student types.Student) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (name, email, age) VALUES (?, ?, ?)",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(student.Name, student.Email, student.Age)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: last insert id: %w", err)
	}

	student.ID = lastID
	return student, nil
}

// ListStudents returns all student rows ordered by id.
func (s *SQLite) ListStudents() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT id, name, email, age FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: prepare: %w", err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("ListStudents: query: %w", err)
	}
	defer rows.Close()

	// Non-nil so an empty table encodes as [] rather than null.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Age,
		); err != nil {
			return nil, fmt.Errorf("ListStudents: scan row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListStudents: rows iteration: %w", err)
	}

	return students, nil
}
