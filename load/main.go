package load

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"aep/energy"
)

type Config struct {
	In         string `arg:"-i,--in" default:"formatted_africa_energy_data.json" help:"Formatted wide record file to load"`
	Database   string `arg:"--db" default:"AfricaEnergyDB" help:"Database the documents are inserted into"`
	Collection string `arg:"--collection" default:"EnergyData" help:"Collection the documents are inserted into"`
	BatchSize  int    `arg:"-n,--batch-size" default:"500" help:"Number of documents per insert batch"`
}

func (Config) Description() string {
	return `Loads the formatted records into MongoDB in batches.
Requires the "MONGO_USERNAME", "MONGO_PASSWORD" and "MONGO_HOST" environment
variables, which can also be provided via a .env file.

Inserts are not transactional: when a batch fails the earlier ones stay
committed, and re-running the load duplicates documents.`
}

func (config *Config) Execute() {
	if config.BatchSize < 1 {
		slog.Error(fmt.Sprintf("Batch size must be at least 1, got %d", config.BatchSize))
		return
	}

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		slog.Warn(fmt.Sprint("Could not load .env file: ", err))
	}

	// Guard against a skipped or failed transform stage
	if _, err := os.Stat(config.In); err != nil {
		slog.Error(fmt.Sprint("Nothing to load: ", err))
		return
	}

	records, err := energy.ReadRecords(config.In)
	if err != nil {
		slog.Error(fmt.Sprintf("Could not read formatted data from '%s': %s", config.In, err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Connect(ctx)
	if err != nil {
		slog.Error(fmt.Sprint("Could not reach the document store: ", err))
		return
	}
	defer client.Disconnect(context.Background())

	collection := client.Database(config.Database).Collection(config.Collection)
	if err := InsertRecords(collection, records, config.BatchSize); err != nil {
		slog.Error(fmt.Sprint("Load aborted: ", err))
		return
	}

	fmt.Printf("Loaded %d records into %s.%s\n", len(records), config.Database, config.Collection)
}
