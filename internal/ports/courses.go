package ports

import (
	"context"

	"github.com/Guilhem-Bonnet/courseinfo/internal/domain"
)

// CourseRepository est le contrat de persistance du catalogue. Toute
// implémentation (sqlite, mémoire) doit être substituable sans changer les
// consommateurs.
type CourseRepository interface {
	// SaveCourse insère ou remplace le cours (upsert par id, un seul statement).
	SaveCourse(ctx context.Context, course domain.Course) error
	// GetAllCourses renvoie un snapshot détaché de tous les cours, trié par id.
	// Jamais nil en cas de succès.
	GetAllCourses(ctx context.Context) ([]domain.Course, error)
	// AddNotes remplace les notes du cours identifié par id.
	// Renvoie ErrNotFound si l'id est inconnu.
	AddNotes(ctx context.Context, id, notes string) error
}
