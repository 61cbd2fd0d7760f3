package warehouse

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aep/energy"
)

const createTableStmt string = `CREATE TABLE IF NOT EXISTS energy_data (
	country TEXT NOT NULL,
	country_serial TEXT,
	metric TEXT NOT NULL,
	unit TEXT,
	sector TEXT,
	sub_sector TEXT,
	source_link TEXT,
	source TEXT,
	year INT NOT NULL,
	value DOUBLE PRECISION
)`

const (
	createIndexStmt string = `CREATE INDEX IF NOT EXISTS energy_data_country_metric_idx
		ON energy_data (country, metric)`
	dropIndexStmt string = `DROP INDEX IF EXISTS energy_data_country_metric_idx`
)

var copyColumns = []string{
	"country", "country_serial", "metric", "unit",
	"sector", "sub_sector", "source_link", "source",
	"year", "value",
}

func EnsureTable(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), createTableStmt)
	return err
}

// Copying into an unindexed table and indexing afterwards is faster than
// keeping the index up to date row by row
func DropIndex(pool *pgxpool.Pool) {
	slog.Info("Dropping lookup index...")

	_, err := pool.Exec(context.Background(), dropIndexStmt)
	if err != nil {
		slog.Error(err.Error())
		return
	}
}

func CreateIndex(pool *pgxpool.Pool) {
	slog.Info("Recreating lookup index...")

	_, err := pool.Exec(context.Background(), createIndexStmt)
	if err != nil {
		slog.Error(err.Error())
		return
	}

	slog.Info("Finished creating index!")
}

// CopyRecords bulk copies the records in long form, one row per year column
func CopyRecords(pool *pgxpool.Pool, records []*energy.Record) error {
	rows, err := longRows(records)
	if err != nil {
		return err
	}

	size := len(rows)
	count, err := pool.CopyFrom(
		context.TODO(),
		pgx.Identifier{"public", "energy_data"},
		copyColumns,
		pgx.CopyFromSlice(size, func(i int) ([]any, error) { return rows[i], nil }),
	)
	if err != nil {
		return err
	}

	logStr := fmt.Sprintf("%v/%v rows copied", count, size)
	if int(count) != size {
		slog.Warn(logStr)
	} else {
		slog.Info(logStr)
	}
	return nil
}

func longRows(records []*energy.Record) ([][]any, error) {
	rows := make([][]any, 0, len(records))
	for _, record := range records {
		for _, key := range record.YearKeys() {
			year, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("year column '%s' is not a number: %w", key, err)
			}

			rows = append(rows, []any{
				record.Country, record.CountrySerial, record.Metric, record.Unit,
				record.Sector, record.SubSector, record.SourceLink, record.Source,
				year, rowValue(record.Years[key]),
			})
		}
	}
	return rows, nil
}

// rowValue converts a year value to the nullable float column. The
// missing-value encodings and anything else that is not a number become NULL.
func rowValue(v any) *float64 {
	if energy.NoValue(v) {
		return nil
	}

	switch value := v.(type) {
	case float64:
		return &value
	case string:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return &f
		}
	}
	return nil
}
