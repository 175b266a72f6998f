// seed carga en PostgreSQL el catálogo externo (ítems, proyectos y pedidos) desde el mismo
// JSON que usa el almacén en memoria. Es idempotente: re-ejecutar actualiza los registros.
//
// Uso: go run ./cmd/seed [ruta/seed.json]
// Por defecto lee MEMORY_SEED_FILE o, si no está definido, seed.json en el directorio actual.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/logistica-api/internal/application/ports"
	"github.com/jhoicas/logistica-api/internal/infrastructure/postgres"
	"github.com/jhoicas/logistica-api/pkg/config"
	"github.com/jhoicas/logistica-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	path := cfg.Storage.SeedFile
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if path == "" {
		path = "seed.json"
	}
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("abrir seed")
	}
	seed, err := ports.DecodeCatalogSeed(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("decodificar seed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	pool, err := postgres.NewPool(ctx, cfg.DB, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.SeedCatalog(ctx, pool, seed); err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo")
	}
	log.Info().
		Int("items", len(seed.Items)).
		Int("projects", len(seed.Projects)).
		Int("orders", len(seed.Orders)).
		Msg("catálogo cargado")
}
