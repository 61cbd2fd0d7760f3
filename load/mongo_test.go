package load

import (
	"testing"

	"github.com/stretchr/testify/require"

	"aep/energy"
)

func TestChunksBoundTheBatchSize(t *testing.T) {
	batches := chunks(make([]*energy.Record, 1203), 500)

	require.Len(t, batches, 3)
	require.Len(t, batches[0], 500)
	require.Len(t, batches[1], 500)
	require.Len(t, batches[2], 203)

	require.Empty(t, chunks(nil, 500))

	single := chunks(make([]*energy.Record, 10), 500)
	require.Len(t, single, 1)
	require.Len(t, single[0], 10)
}

func TestChunksCollapseNonPositiveSizes(t *testing.T) {
	records := make([]*energy.Record, 3)

	single := chunks(records, 0)
	require.Len(t, single, 1)
	require.Len(t, single[0], 3)

	single = chunks(records, -500)
	require.Len(t, single, 1)
	require.Len(t, single[0], 3)

	require.Empty(t, chunks(nil, 0))
}
