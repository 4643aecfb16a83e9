// Package storage abstracts the object store holding answer-sheet
// images, merged documents, and generated audio.
package storage

import "context"

type Store interface {
	// Fetch returns the object's bytes and its stored content type.
	Fetch(ctx context.Context, ref string) (data []byte, contentType string, err error)
	// Put writes an object and returns the reference to retrieve it.
	Put(ctx context.Context, ref string, data []byte, contentType string) (string, error)
}
