package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/Guilhem-Bonnet/courseinfo/internal/domain"
	"github.com/Guilhem-Bonnet/courseinfo/internal/ports"
)

// CoursesRepository tient le même contrat que l'adapter sqlite, en mémoire.
// Utilisé par les tests et utilisable derrière les mêmes consommateurs.
type CoursesRepository struct {
	mu      sync.Mutex
	courses map[string]domain.Course
}

func NewCoursesRepository() *CoursesRepository {
	return &CoursesRepository{courses: make(map[string]domain.Course)}
}

func (r *CoursesRepository) SaveCourse(ctx context.Context, course domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses[course.ID] = course
	return nil
}

func (r *CoursesRepository) GetAllCourses(ctx context.Context) ([]domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *CoursesRepository) AddNotes(ctx context.Context, id, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.courses[id]
	if !ok {
		return ports.ErrNotFound
	}
	// Reconstruction via le constructeur : l'invariant du domaine reste garanti.
	updated, err := domain.NewCourse(existing.ID, existing.Name, existing.Length, existing.URL, &notes)
	if err != nil {
		return &ports.RepositoryError{Op: "add notes " + id, Err: err}
	}
	r.courses[id] = updated
	return nil
}
