package warehouse

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"aep/energy"
)

const WAREHOUSE_ENV_VAR string = "WAREHOUSE_CONN_STRING"

type Config struct {
	In      string `arg:"-i,--in" default:"formatted_africa_energy_data.json" help:"Formatted wide record file to copy"`
	Reindex bool   `help:"Drop the lookup index before the copy and recreate it afterwards"`
}

func (Config) Description() string {
	return `Copies the formatted records into a Postgres warehouse in long form,
one row per record and year. Requires the "WAREHOUSE_CONN_STRING" environment
variable, which can also be provided via a .env file.`
}

func (config *Config) Execute() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		slog.Warn(fmt.Sprint("Could not load .env file: ", err))
	}

	if _, err := os.Stat(config.In); err != nil {
		slog.Error(fmt.Sprint("Nothing to copy: ", err))
		return
	}

	records, err := energy.ReadRecords(config.In)
	if err != nil {
		slog.Error(fmt.Sprintf("Could not read formatted data from '%s': %s", config.In, err))
		return
	}

	pool, err := pgxpool.New(context.Background(), os.Getenv(WAREHOUSE_ENV_VAR))
	if err != nil {
		slog.Error(fmt.Sprint("Could not set up the warehouse pool: ", err))
		return
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		slog.Error(fmt.Sprint("Could not reach the warehouse: ", err))
		return
	}

	if err := EnsureTable(pool); err != nil {
		slog.Error(fmt.Sprint("Could not create the warehouse table: ", err))
		return
	}

	if config.Reindex {
		DropIndex(pool)
	}

	if err := CopyRecords(pool, records); err != nil {
		slog.Error(fmt.Sprint("Copy aborted: ", err))
		return
	}

	if config.Reindex {
		CreateIndex(pool)
	}
}
