package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Guilhem-Bonnet/courseinfo/internal/domain"
	"github.com/Guilhem-Bonnet/courseinfo/internal/ports"
)

// TopicCoursesSynced est publié sur le bus après chaque run du pipeline.
const TopicCoursesSynced = "courses.synced"

// CourseRetriever est le collaborateur distant vu par le service de catalogue.
type CourseRetriever interface {
	GetCoursesFor(ctx context.Context, authorID string) ([]PluralsightCourse, error)
}

type CourseCatalogService struct {
	repo      ports.CourseRepository
	retriever CourseRetriever
	baseURL   string
	bus       ports.EventBus // optionnel
}

func NewCourseCatalogService(repo ports.CourseRepository, retriever CourseRetriever, baseURL string, bus ports.EventBus) *CourseCatalogService {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &CourseCatalogService{
		repo:      repo,
		retriever: retriever,
		baseURL:   strings.TrimRight(baseURL, "/"),
		bus:       bus,
	}
}

// StoreRemoteCourses mappe chaque cours distant vers le domaine et l'upsert.
// Pas d'atomicité sur la séquence : la première erreur interrompt le reste,
// les écritures déjà faites restent commitées.
func (s *CourseCatalogService) StoreRemoteCourses(ctx context.Context, remote []PluralsightCourse) error {
	for _, rc := range remote {
		minutes, err := rc.DurationInMinutes()
		if err != nil {
			return fmt.Errorf("course %s: %w", rc.ID, err)
		}
		course, err := domain.NewCourse(rc.ID, rc.Title, minutes, s.baseURL+rc.ContentURL, nil)
		if err != nil {
			return fmt.Errorf("course %s: %w", rc.ID, err)
		}
		if err := s.repo.SaveCourse(ctx, course); err != nil {
			return err
		}
	}
	return nil
}

// Sync exécute le pipeline complet pour un auteur : fetch, filtre des cours
// retirés, mapping, persistance. Renvoie le nombre de cours stockés.
func (s *CourseCatalogService) Sync(ctx context.Context, authorID string) (int, error) {
	remote, err := s.retriever.GetCoursesFor(ctx, authorID)
	if err != nil {
		return 0, err
	}
	active := FilterRetired(remote)
	if err := s.StoreRemoteCourses(ctx, active); err != nil {
		return 0, err
	}
	s.publishSynced(authorID, len(active))
	return len(active), nil
}

func (s *CourseCatalogService) List(ctx context.Context) ([]domain.Course, error) {
	return s.repo.GetAllCourses(ctx)
}

// AddNotes remplace les notes d'un cours existant. Des notes vides sont
// rejetées avant d'atteindre le repository.
func (s *CourseCatalogService) AddNotes(ctx context.Context, id, notes string) error {
	if strings.TrimSpace(notes) == "" {
		return fmt.Errorf("%w: notes must not be blank", domain.ErrInvalidCourse)
	}
	return s.repo.AddNotes(ctx, id, notes)
}

func (s *CourseCatalogService) publishSynced(authorID string, stored int) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(map[string]any{"authorId": authorID, "stored": stored})
	if err != nil {
		return
	}
	s.bus.Publish(TopicCoursesSynced, payload)
}
