package main

import (
	"context"
	"flag"
	"os"

	"latlng-api/internal/config"
	"latlng-api/internal/importer"
	"latlng-api/internal/logging"
	"latlng-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	configPath := flag.String("config", "configs", "Directory holding app.env")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	if err := run(context.Background(), cfg.DBSource, *file); err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("import failed")
	}
}

func run(ctx context.Context, dbSource, path string) error {
	log.Info().Str("file", path).Msg("starting import")

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := importer.ReadCSV(f)
	if err != nil {
		return err
	}
	log.Info().Int("records", len(res.Locations)).Int("skipped", res.Skipped).Msg("parsed csv")

	pool, err := pgxpool.New(ctx, dbSource)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if err := repo.CreateSchema(ctx); err != nil {
		return err
	}

	before, err := repo.CountLocations(ctx)
	if err != nil {
		return err
	}

	n, err := repo.InsertLocations(ctx, res.Locations)
	if err != nil {
		return err
	}

	after, err := repo.CountLocations(ctx)
	if err != nil {
		return err
	}
	if after-before != n {
		log.Warn().Int64("inserted", n).Int64("counted", after-before).Msg("row count mismatch after import")
	}

	log.Info().Int64("inserted", n).Msg("import finished")
	return nil
}
