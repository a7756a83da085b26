package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultBaseURL = "https://app.pluralsight.com"

// PluralsightCourse est la forme brute renvoyée par l'API auteur. Elle n'est
// jamais persistée : décodée, mappée vers domain.Course, puis jetée.
type PluralsightCourse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Duration   string `json:"duration"`
	ContentURL string `json:"contentUrl"`
	IsRetired  bool   `json:"isRetired"`
}

// DurationInMinutes convertit la durée "HH:MM:SS[.fraction]" en minutes
// entières. La fraction et les secondes sont tronquées (floor), jamais
// arrondies : "00:00:59" donne 0.
func (c PluralsightCourse) DurationInMinutes() (int64, error) {
	return ParseDurationMinutes(c.Duration)
}

func ParseDurationMinutes(s string) (int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	secs := parts[2]
	if i := strings.IndexByte(secs, '.'); i >= 0 {
		secs = secs[:i]
	}
	seconds, err := strconv.ParseInt(secs, 10, 64)
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedDuration, s)
	}
	return hours*60 + minutes, nil
}

// FilterRetired écarte les cours retirés du catalogue : ils ne produisent
// jamais de domain.Course.
func FilterRetired(courses []PluralsightCourse) []PluralsightCourse {
	out := make([]PluralsightCourse, 0, len(courses))
	for _, c := range courses {
		if !c.IsRetired {
			out = append(out, c)
		}
	}
	return out
}

type PluralsightService struct {
	baseURL string
	client  *http.Client
}

func NewPluralsightService(baseURL string, timeout time.Duration) *PluralsightService {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &PluralsightService{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Le transport par défaut suit les redirections, ce qui suffit ici.
		client: &http.Client{Timeout: timeout},
	}
}

// GetCoursesFor renvoie le catalogue complet de l'auteur. Un auteur inconnu
// (404) donne une liste vide, pas une erreur. L'id est échappé comme segment
// de chemin avant interpolation.
func (s *PluralsightService) GetCoursesFor(ctx context.Context, authorID string) ([]PluralsightCourse, error) {
	u := fmt.Sprintf("%s/profile/data/author/%s/all-content", s.baseURL, url.PathEscape(authorID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &RetrievalError{Err: err}
		}
		var courses []PluralsightCourse
		if err := json.Unmarshal(body, &courses); err != nil {
			return nil, fmt.Errorf("pluralsight: decode response: %w", err)
		}
		return courses, nil
	case http.StatusNotFound:
		return []PluralsightCourse{}, nil
	default:
		return nil, &RetrievalError{StatusCode: resp.StatusCode}
	}
}
