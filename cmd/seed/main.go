package main

import (
	"flag"

	"github.com/jhoicas/Tienda-bot/internal/infrastructure/sqlite"
	"github.com/jhoicas/Tienda-bot/pkg/config"
	"github.com/jhoicas/Tienda-bot/pkg/logger"
)

// Siembra el catálogo inicial de productos. Solo inserta si la tabla está
// vacía, así que es seguro ejecutarlo más de una vez.
func main() {
	var path string
	flag.StringVar(&path, "db", "", "ruta del archivo SQLite (por defecto la de configuración)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if path == "" {
		path = cfg.DB.Path
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	store, err := sqlite.NewStore(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("abrir base SQLite")
	}
	defer store.Close()

	if err := store.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("inicializar esquema")
	}

	inserted, err := store.Seed()
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar catálogo")
	}
	if inserted == 0 {
		log.Info().Msg("el catálogo ya tiene productos; no se insertó nada")
		return
	}
	log.Info().Int("productos", inserted).Msg("catálogo sembrado")
}
