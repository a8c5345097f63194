package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"gorm.io/gorm"
)

// claveDocumento identifies the single document row per deployment.
const claveDocumento = "inventario"

// GormStore keeps the document as one JSONB row in Postgres. Same contract as
// FileStore: whole-document reads, all-or-nothing whole-document writes.
type GormStore struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Read(ctx context.Context) (*model.Documento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leer(ctx)
}

func (s *GormStore) Mutate(ctx context.Context, fn MutateFunc) (*model.Documento, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.leer(ctx)
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
	if err := s.escribir(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *GormStore) leer(ctx context.Context) (*model.Documento, error) {
	var raw []byte
	row := s.db.WithContext(ctx).
		Raw(`SELECT payload FROM documentos WHERE clave = ?`, claveDocumento).
		Row()
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NuevoDocumento(), nil
		}
		return nil, fmt.Errorf("gorm store: read: %w", err)
	}

	doc := &model.Documento{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("gorm store: parse: %w", err)
	}
	doc.EnsureShape()
	return doc, nil
}

func (s *GormStore) escribir(ctx context.Context, doc *model.Documento) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("gorm store: marshal: %w", err)
	}
	err = s.db.WithContext(ctx).Exec(`
		INSERT INTO documentos (clave, payload, updated_at)
		VALUES (?, ?, now())
		ON CONFLICT (clave) DO UPDATE
		SET payload = EXCLUDED.payload,
		    updated_at = now()
	`, claveDocumento, raw).Error
	if err != nil {
		return fmt.Errorf("gorm store: write: %w", err)
	}
	return nil
}
