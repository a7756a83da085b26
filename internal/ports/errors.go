package ports

import "errors"

var ErrNotFound = errors.New("not found")

// RepositoryError masque les erreurs propres au store sous-jacent : les
// appelants ne voient qu'un seul type, la cause reste accessible via Unwrap.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	if e.Err == nil {
		return "repository: " + e.Op
	}
	return "repository: " + e.Op + ": " + e.Err.Error()
}

func (e *RepositoryError) Unwrap() error { return e.Err }
