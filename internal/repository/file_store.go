package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlonsoDiaz/web-inventario/internal/model"
)

// FileStore keeps the document in a single JSON file. Writes go through a
// temp file plus rename so readers never observe a partial document. The
// mutex serializes in-process mutations; concurrent writers from other
// processes remain last-write-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("file store: create data dir: %w", err)
	}
	s := &FileStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.escribir(model.NuevoDocumento()); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("file store: stat: %w", err)
	}
	return s, nil
}

func (s *FileStore) Read(_ context.Context) (*model.Documento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leer()
}

func (s *FileStore) Mutate(_ context.Context, fn MutateFunc) (*model.Documento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.leer()
	if err != nil {
		return nil, err
	}
	draft, err := clonar(doc)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.escribir(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *FileStore) leer() (*model.Documento, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("file store: read: %w", err)
	}
	doc := &model.Documento{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("file store: parse: %w", err)
	}
	doc.EnsureShape()
	return doc, nil
}

func (s *FileStore) escribir(doc *model.Documento) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("file store: marshal: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("file store: write temp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("file store: rename: %w", err)
	}
	return nil
}
