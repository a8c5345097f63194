//go:build integration

package repository

// Run with: go test -tags integration ./internal/repository/... -v

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlonsoDiaz/web-inventario/internal/infra"
	"github.com/AlonsoDiaz/web-inventario/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) *GormStore {
	t.Helper()
	ctx := context.Background()

	container, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("inventario"),
		tcPostgres.WithUsername("inventario"),
		tcPostgres.WithPassword("inventario"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	return NewGormStore(db)
}

func TestGormStore_DocumentoVacioSinFila(t *testing.T) {
	store := startPostgres(t)

	doc, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Products)
	assert.NotNil(t, doc.Pricing.PreciosPorComuna)
}

func TestGormStore_MutateUpsert(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()

	_, err := store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Products = append(draft.Products, model.Producto{
			ID: "p1", Name: "Huevos de campo", UnitPrice: decimal.NewFromInt(3500),
		})
		return nil
	})
	require.NoError(t, err)

	_, err = store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Products[0].UnitPrice = decimal.NewFromInt(3800)
		return nil
	})
	require.NoError(t, err)

	doc, err := store.Read(ctx)
	require.NoError(t, err)
	require.Len(t, doc.Products, 1)
	assert.True(t, decimal.NewFromInt(3800).Equal(doc.Products[0].UnitPrice))
}

func TestGormStore_MutateAbortadaNoEscribe(t *testing.T) {
	store := startPostgres(t)
	ctx := context.Background()

	_, err := store.Mutate(ctx, func(draft *model.Documento) error {
		draft.Clients = append(draft.Clients, model.Cliente{ID: "c1"})
		return errors.New("boom")
	})
	require.Error(t, err)

	doc, err := store.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Clients)
}
