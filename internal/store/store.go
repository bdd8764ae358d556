// Package store keeps rendered heat-map artifacts so the API can serve an
// image after the request that produced it.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrArtifactNotFound is returned for unknown or expired ids.
var ErrArtifactNotFound = errors.New("artifact not found")

// Artifact is a rendered file plus what it describes.
type Artifact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	Data        []byte    `json:"data"`
	CreatedAt   time.Time `json:"created_at"`
}

// Store persists artifacts for a limited time.
type Store interface {
	Put(ctx context.Context, a Artifact) (string, error)
	Get(ctx context.Context, id string) (*Artifact, error)
	Close() error
}

// NewID returns a fresh artifact id.
func NewID() string {
	return uuid.NewString()
}

// ValidID reports whether id has the shape NewID produces.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// prepare fills id and timestamp for a new artifact.
func prepare(a *Artifact, now time.Time) {
	if a.ID == "" {
		a.ID = NewID()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
}
