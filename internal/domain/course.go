package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCourse = errors.New("invalid course")

// Course est un value object immuable : construit via NewCourse, jamais
// modifié ensuite. Une instance invalide n'est pas observable.
type Course struct {
	ID     string
	Name   string
	Length int64 // minutes
	URL    string
	Notes  *string // nil = pas de notes
}

// NewCourse valide chaque champ et renvoie ErrInvalidCourse (wrappé avec la
// règle violée) au premier manquement.
func NewCourse(id, name string, length int64, url string, notes *string) (Course, error) {
	if strings.TrimSpace(id) == "" {
		return Course{}, fmt.Errorf("%w: id must not be blank", ErrInvalidCourse)
	}
	if strings.TrimSpace(name) == "" {
		return Course{}, fmt.Errorf("%w: name must not be blank", ErrInvalidCourse)
	}
	if strings.TrimSpace(url) == "" {
		return Course{}, fmt.Errorf("%w: url must not be blank", ErrInvalidCourse)
	}
	if length <= 0 {
		return Course{}, fmt.Errorf("%w: length must be positive, got %d", ErrInvalidCourse, length)
	}
	if notes != nil && strings.TrimSpace(*notes) == "" {
		return Course{}, fmt.Errorf("%w: notes must not be blank when present", ErrInvalidCourse)
	}
	return Course{ID: id, Name: name, Length: length, URL: url, Notes: notes}, nil
}
