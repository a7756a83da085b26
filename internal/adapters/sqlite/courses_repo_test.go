package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Guilhem-Bonnet/courseinfo/internal/domain"
	"github.com/Guilhem-Bonnet/courseinfo/internal/ports"
)

func openTestRepo(t *testing.T) *CoursesRepository {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewCoursesRepository(db.SQL)
}

func mustCourse(t *testing.T, id, name string, length int64, url string, notes *string) domain.Course {
	t.Helper()
	c, err := domain.NewCourse(id, name, length, url, notes)
	if err != nil {
		t.Fatalf("NewCourse: %v", err)
	}
	return c
}

func TestCoursesRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	courses, err := repo.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("GetAllCourses(empty): %v", err)
	}
	if courses == nil || len(courses) != 0 {
		t.Fatalf("want empty slice, got %v", courses)
	}

	c1 := mustCourse(t, "b-course", "B Course", 45, "https://app.pluralsight.com/courses/b", nil)
	c2 := mustCourse(t, "a-course", "A Course", 120, "https://app.pluralsight.com/courses/a", nil)
	if err := repo.SaveCourse(ctx, c1); err != nil {
		t.Fatalf("SaveCourse: %v", err)
	}
	if err := repo.SaveCourse(ctx, c2); err != nil {
		t.Fatalf("SaveCourse: %v", err)
	}

	courses, err = repo.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("GetAllCourses: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("courses: want 2, got %d", len(courses))
	}
	// Tri par id.
	if courses[0].ID != "a-course" || courses[1].ID != "b-course" {
		t.Fatalf("unexpected order: %q, %q", courses[0].ID, courses[1].ID)
	}
	if courses[0].Name != "A Course" || courses[0].Length != 120 || courses[0].URL != "https://app.pluralsight.com/courses/a" {
		t.Fatalf("unexpected course: %+v", courses[0])
	}
	if courses[0].Notes != nil {
		t.Fatalf("Notes: want nil, got %q", *courses[0].Notes)
	}
}

func TestCoursesRepository_UpsertReplacesAllFields(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	first := mustCourse(t, "same-id", "Old Name", 10, "https://old", nil)
	if err := repo.SaveCourse(ctx, first); err != nil {
		t.Fatalf("SaveCourse: %v", err)
	}
	second := mustCourse(t, "same-id", "New Name", 99, "https://new", nil)
	if err := repo.SaveCourse(ctx, second); err != nil {
		t.Fatalf("SaveCourse(upsert): %v", err)
	}

	courses, err := repo.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("GetAllCourses: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("rows: want exactly 1, got %d", len(courses))
	}
	got := courses[0]
	if got.Name != "New Name" || got.Length != 99 || got.URL != "https://new" {
		t.Fatalf("latest values not kept: %+v", got)
	}
}

func TestCoursesRepository_AddNotes(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	c1 := mustCourse(t, "c1", "One", 30, "https://one", nil)
	c2 := mustCourse(t, "c2", "Two", 60, "https://two", nil)
	if err := repo.SaveCourse(ctx, c1); err != nil {
		t.Fatalf("SaveCourse: %v", err)
	}
	if err := repo.SaveCourse(ctx, c2); err != nil {
		t.Fatalf("SaveCourse: %v", err)
	}

	if err := repo.AddNotes(ctx, "c1", "excellent module 3"); err != nil {
		t.Fatalf("AddNotes: %v", err)
	}

	courses, err := repo.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("GetAllCourses: %v", err)
	}
	if courses[0].Notes == nil || *courses[0].Notes != "excellent module 3" {
		t.Fatalf("notes not updated: %+v", courses[0])
	}
	// Seul le champ notes de c1 change.
	if courses[0].Name != "One" || courses[0].Length != 30 || courses[0].URL != "https://one" {
		t.Fatalf("other fields changed: %+v", courses[0])
	}
	if courses[1].Notes != nil {
		t.Fatalf("other row changed: %+v", courses[1])
	}
}

func TestCoursesRepository_AddNotes_UnknownID(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	err := repo.AddNotes(ctx, "missing", "notes")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCoursesRepository_NotesSurviveRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := openTestRepo(t)

	notes := "à finir"
	c := mustCourse(t, "c1", "One", 30, "https://one", &notes)
	if err := repo.SaveCourse(ctx, c); err != nil {
		t.Fatalf("SaveCourse: %v", err)
	}

	courses, err := repo.GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("GetAllCourses: %v", err)
	}
	if courses[0].Notes == nil || *courses[0].Notes != "à finir" {
		t.Fatalf("notes lost: %+v", courses[0])
	}
}

func TestOpen_SchemaCreationIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "courses.db")

	db1, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open(first): %v", err)
	}
	repo := NewCoursesRepository(db1.SQL)
	if err := repo.SaveCourse(ctx, mustCourse(t, "c1", "One", 30, "https://one", nil)); err != nil {
		t.Fatalf("SaveCourse: %v", err)
	}
	if err := db1.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db2, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open(second): %v", err)
	}
	t.Cleanup(func() { _ = db2.Close() })

	courses, err := NewCoursesRepository(db2.SQL).GetAllCourses(ctx)
	if err != nil {
		t.Fatalf("GetAllCourses: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != "c1" {
		t.Fatalf("data lost across reopen: %+v", courses)
	}
}
