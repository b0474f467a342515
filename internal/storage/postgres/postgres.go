// Package postgres provides a PostgreSQL-backed implementation of the
// storage.Storage interface using database/sql and the lib/pq driver.
//
// Selected by setting storage.driver to "postgres" in the config; the
// connection string comes from storage.postgres_dsn.
package postgres

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/meera-joshi/student-registry/internal/config"
	"github.com/meera-joshi/student-registry/internal/types"
)

// Postgres implements storage.Storage over a lib/pq connection pool.
type Postgres struct {
	Db *sql.DB
}

// New connects to PostgreSQL using cfg.Storage.PostgresDSN, verifies the
// connection with a ping, and creates the students table if it does not
// already exist.
func New(cfg *config.Config) (*Postgres, error) {
	db, err := sql.Open("postgres", cfg.Storage.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: open db: %w", err)
	}

	// sql.Open only validates the DSN; ping to surface connectivity
	// problems at startup rather than on the first request.
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("postgres.New: ping: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id    BIGSERIAL PRIMARY KEY,
			name  TEXT    NOT NULL,
			email TEXT    NOT NULL DEFAULT '',
			age   INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres.New: create table: %w", err)
	}

	return &Postgres{Db: db}, nil
}

// CreateStudent inserts a new row and returns the record with the
// generated primary key filled in. lib/pq does not support
// LastInsertId, so the id comes back via RETURNING.
func (p *Postgres) CreateStudent(student types.Student) (types.Student, error) {
	err := p.Db.QueryRow(
		"INSERT INTO students (name, email, age) VALUES ($1, $2, $3) RETURNING id",
		student.Name, student.Email, student.Age,
	).Scan(&student.ID)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: insert: %w", err)
	}

	return student, nil
}

// ListStudents returns all student rows ordered by id.
func (p *Postgres) ListStudents() ([]types.Student, error) {
	rows, err := p.Db.Query(
		"SELECT id, name, email, age FROM students ORDER BY id",
	)
	if err != nil {
		return nil, fmt.Errorf("ListStudents: query: %w", err)
	}
	defer rows.Close()

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
