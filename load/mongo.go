package load

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"aep/energy"
	"aep/utils"
)

const (
	MONGO_USER_ENV_VAR string = "MONGO_USERNAME"
	MONGO_PASS_ENV_VAR string = "MONGO_PASSWORD"
	MONGO_HOST_ENV_VAR string = "MONGO_HOST"
)

// Connect dials the cluster named by the environment and verifies it is
// actually reachable with a ping. The context bounds both the dial and the
// ping, so a 5 second context means at most 5 seconds before the load gives
// up.
func Connect(ctx context.Context) (*mongo.Client, error) {
	username := os.Getenv(MONGO_USER_ENV_VAR)
	password := os.Getenv(MONGO_PASS_ENV_VAR)
	host := os.Getenv(MONGO_HOST_ENV_VAR)
	if username == "" || host == "" {
		return nil, fmt.Errorf("%s and %s must be set", MONGO_USER_ENV_VAR, MONGO_HOST_ENV_VAR)
	}

	// The password is the only part that can contain URI metacharacters
	uri := fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		username, url.QueryEscape(password), host)

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// InsertRecords writes the records to the collection as flat documents in
// batches, to keep individual requests reasonably sized. A failed batch stops
// the load; batches before it remain committed.
func InsertRecords(collection *mongo.Collection, records []*energy.Record, batchSize int) error {
	bar := utils.NewBar(len(records), "Inserting documents")

	for i, batch := range chunks(records, batchSize) {
		documents := make([]any, 0, len(batch))
		for _, record := range batch {
			documents = append(documents, record.Document())
		}

		if _, err := collection.InsertMany(context.TODO(), documents); err != nil {
			return fmt.Errorf("insert of batch %d failed: %w", i, err)
		}
		bar.Add(len(batch))
	}
	return nil
}

// chunks splits the records into consecutive batches of at most size each.
// Sizes below 1 collapse everything into a single batch.
func chunks(records []*energy.Record, size int) [][]*energy.Record {
	if size < 1 {
		size = len(records)
	}

	var batches [][]*energy.Record
	for first := 0; first < len(records); first += size {
		batches = append(batches, records[first:min(first+size, len(records))])
	}
	return batches
}
