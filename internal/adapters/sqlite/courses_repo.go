package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/Guilhem-Bonnet/courseinfo/internal/domain"
	"github.com/Guilhem-Bonnet/courseinfo/internal/ports"
)

type CoursesRepository struct {
	db *sqlx.DB
}

func NewCoursesRepository(db *sqlx.DB) *CoursesRepository {
	return &CoursesRepository{db: db}
}

// courseRow est la représentation persistée. Le scan se fait par nom de
// colonne, jamais par position, pour rester stable si le schéma évolue.
type courseRow struct {
	ID     string         `db:"id"`
	Name   string         `db:"name"`
	Length int64          `db:"length"`
	URL    string         `db:"url"`
	Notes  sql.NullString `db:"notes"`
}

func (r courseRow) toDomain() (domain.Course, error) {
	var notes *string
	if r.Notes.Valid {
		notes = &r.Notes.String
	}
	return domain.NewCourse(r.ID, r.Name, r.Length, r.URL, notes)
}

// SaveCourse fait l'upsert en un seul statement : pas de check d'existence
// séparé, pas de branche, pas de course entre deux accès.
func (r *CoursesRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	row := courseRow{ID: course.ID, Name: course.Name, Length: course.Length, URL: course.URL}
	if course.Notes != nil {
		row.Notes = sql.NullString{String: *course.Notes, Valid: true}
	}
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO courses(id, name, length, url, notes)
		VALUES(:id, :name, :length, :url, :notes)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			length = excluded.length,
			url = excluded.url,
			notes = excluded.notes
	`, row)
	if err != nil {
		return &ports.RepositoryError{Op: "save course " + course.ID, Err: err}
	}
	return nil
}

func (r *CoursesRepository) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	var rows []courseRow
	err := r.db.SelectContext(ctx, &rows, `SELECT id, name, length, url, notes FROM courses ORDER BY id`)
	if err != nil {
		return nil, &ports.RepositoryError{Op: "list courses", Err: err}
	}
	out := make([]domain.Course, 0, len(rows))
	for _, row := range rows {
		course, err := row.toDomain()
		if err != nil {
			return nil, &ports.RepositoryError{Op: "list courses", Err: err}
		}
		out = append(out, course)
	}
	return out, nil
}

func (r *CoursesRepository) AddNotes(ctx context.Context, id, notes string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE courses SET notes = ? WHERE id = ?`, notes, id)
	if err != nil {
		return &ports.RepositoryError{Op: "add notes " + id, Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &ports.RepositoryError{Op: "add notes " + id, Err: err}
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}
