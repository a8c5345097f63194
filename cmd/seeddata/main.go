// cmd/seeddata/main.go — Siembra configuración y catálogo de demo.
// Uso: go run cmd/seeddata/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/AlonsoDiaz/web-inventario/internal/infra"
	"github.com/AlonsoDiaz/web-inventario/internal/model"
	"github.com/AlonsoDiaz/web-inventario/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var comunas = []string{
	"Rocas de Santo Domingo", "Santo Domingo", "Llolleo", "San Antonio",
	"Cartagena", "San Sebastián", "Las Cruces", "El Tabo", "Isla Negra",
	"El Quisco", "Punta de Tralca", "Tunquén",
}

var diasReparto = []string{"Lunes", "Miércoles", "Viernes"}

func main() {
	var (
		store repository.DocumentStore
		err   error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, dbErr := infra.NewDatabase(dsn)
		if dbErr != nil {
			log.Fatalf("db connect error: %v", dbErr)
		}
		store = repository.NewGormStore(db)
	} else {
		dataFile := os.Getenv("DATA_FILE")
		if dataFile == "" {
			dataFile = "data/db.json"
		}
		store, err = repository.NewFileStore(dataFile)
		if err != nil {
			log.Fatalf("data file error: %v", err)
		}
	}

	seeded := false
	_, err = store.Mutate(context.Background(), func(draft *model.Documento) error {
		if len(draft.Settings.Comunas) == 0 {
			draft.Settings.Comunas = comunas
		}
		if len(draft.Settings.DiasReparto) == 0 {
			draft.Settings.DiasReparto = diasReparto
		}
		if len(draft.Products) > 0 {
			return nil
		}
		draft.Products = []model.Producto{
			{ID: uuid.NewString(), Name: "Pan amasado", UnitPrice: decimal.NewFromInt(1500), Category: "Panadería", Unit: "Kilo"},
			{ID: uuid.NewString(), Name: "Huevos de campo", UnitPrice: decimal.NewFromInt(3500), Category: "Huevos", Unit: "Bandeja"},
			{ID: uuid.NewString(), Name: "Queso fresco", UnitPrice: decimal.NewFromInt(4500), Category: "Lácteos", Unit: "Unidad"},
		}
		seeded = true
		return nil
	})
	if err != nil {
		log.Fatalf("seed error: %v", err)
	}

	if seeded {
		fmt.Println("✅ Catálogo de demo y configuración sembrados")
	} else {
		fmt.Println("✅ Configuración verificada, catálogo existente intacto")
	}
}
