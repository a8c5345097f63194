// Package repository persists the application document. A mutation reads the
// whole document, applies a function to a deep-copied draft, and writes the
// whole document back; a failed mutation leaves the stored document untouched.
package repository

import (
	"context"
	"encoding/json"

	"github.com/AlonsoDiaz/web-inventario/internal/model"
)

// MutateFunc transforms a draft document. Returning an error aborts the
// mutation; nothing is persisted and the error is surfaced to the caller.
type MutateFunc func(draft *model.Documento) error

// DocumentStore is the single persistence port. Implementations must make the
// write atomic from the caller's point of view: a subsequent Read sees either
// the previous document or the fully-mutated one, never a partial write.
type DocumentStore interface {
	Read(ctx context.Context) (*model.Documento, error)
	Mutate(ctx context.Context, fn MutateFunc) (*model.Documento, error)
}

// clonar deep-copies a document through the wire codec, so the draft shares
// nothing with the source.
func clonar(doc *model.Documento) (*model.Documento, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	copia := &model.Documento{}
	if err := json.Unmarshal(raw, copia); err != nil {
		return nil, err
	}
	copia.EnsureShape()
	return copia, nil
}
