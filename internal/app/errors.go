package app

import (
	"errors"
	"fmt"
)

// ErrMalformedDuration signale une durée illisible côté provider, en général
// un changement de contrat upstream. Pas de retry possible.
var ErrMalformedDuration = errors.New("malformed duration")

// RetrievalError : échec transport ou statut HTTP inattendu côté provider.
// StatusCode vaut 0 quand l'échec est réseau (timeout, connexion refusée).
type RetrievalError struct {
	StatusCode int
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("pluralsight: unexpected status %d", e.StatusCode)
	}
	if e.Err != nil {
		return "pluralsight: request failed: " + e.Err.Error()
	}
	return "pluralsight: request failed"
}

func (e *RetrievalError) Unwrap() error { return e.Err }
