package batch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func batchFixture() []types.OccupationRecord {
	return []types.OccupationRecord{
		{SOCCode: "15-1252", Title: "Software Developers", EducationLevel: "BD"},
		{SOCCode: "29-1141", Title: "Registered Nurses", EducationLevel: "BD"},
		{SOCCode: "11-1021", Title: "General and Operations Managers", EducationLevel: "BD"},
		{SOCCode: "99-9999", Title: "Mystery Occupation"},
		{SOCCode: "31-1131", Title: "Nursing Assistants", EducationLevel: "PS"},
		{SOCCode: "53-3032", Title: "Heavy and Tractor-Trailer Truck Drivers", EducationLevel: "ST OJT"},
	}
}

func TestRunner_GeneratesAllRecords(t *testing.T) {
	runner := NewRunner(3)

	out, err := runner.Run(context.Background(), batchFixture())
	require.NoError(t, err)
	require.Len(t, out, 6)

	for i, rec := range out {
		require.NotNil(t, rec.Metadata, "record %d should have metadata", i)
		assert.NotEmpty(t, rec.Metadata.CareerCluster)
		assert.NotEmpty(t, rec.Metadata.Keywords)
	}
}

func TestRunner_PreservesOrderAndInputFields(t *testing.T) {
	in := batchFixture()
	in[0].MedianWage = 130160
	in[0].TotalEmployment = 1656880

	runner := NewRunner(4)
	out, err := runner.Run(context.Background(), in)
	require.NoError(t, err)

	for i := range in {
		assert.Equal(t, in[i].SOCCode, out[i].SOCCode)
		assert.Equal(t, in[i].Title, out[i].Title)
	}
	assert.Equal(t, float64(130160), out[0].MedianWage)
	assert.Equal(t, 1656880, out[0].TotalEmployment)
}

func TestRunner_DoesNotMutateInput(t *testing.T) {
	in := batchFixture()

	runner := NewRunner(2)
	_, err := runner.Run(context.Background(), in)
	require.NoError(t, err)

	for i, rec := range in {
		assert.Nil(t, rec.Metadata, "input record %d should stay untouched", i)
	}
}

func TestRunner_ParallelMatchesSequential(t *testing.T) {
	sequential, err := NewRunner(1).Run(context.Background(), batchFixture())
	require.NoError(t, err)

	parallel, err := NewRunner(8).Run(context.Background(), batchFixture())
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestRunner_RerunIsIdempotent(t *testing.T) {
	runner := NewRunner(4)

	first, err := runner.Run(context.Background(), batchFixture())
	require.NoError(t, err)

	second, err := runner.Run(context.Background(), first)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(2).Run(ctx, batchFixture())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_EmptyDataset(t *testing.T) {
	out, err := NewRunner(4).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewRunner_DefaultsWorkers(t *testing.T) {
	assert.Equal(t, DefaultWorkers, NewRunner(0).workers)
	assert.Equal(t, DefaultWorkers, NewRunner(-3).workers)
	assert.Equal(t, 2, NewRunner(2).workers)
}

func TestSummarize(t *testing.T) {
	runner := NewRunner(4)
	out, err := runner.Run(context.Background(), batchFixture())
	require.NoError(t, err)

	s := Summarize(out)
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 6, s.WithMetadata)
	assert.Equal(t, 1, s.FallbackCount, "only the unknown SOC code uses the fallback")
	assert.Greater(t, s.AvgKeywords, 0.0)

	clusterTotal := 0
	for _, n := range s.ClusterCounts {
		clusterTotal += n
	}
	assert.Equal(t, 6, clusterTotal)
	assert.GreaterOrEqual(t, s.ClusterCounts[types.ClusterHealthcare], 2)
}

func TestSummarize_SkipsRecordsWithoutMetadata(t *testing.T) {
	s := Summarize(batchFixture())
	assert.Equal(t, 6, s.Total)
	assert.Equal(t, 0, s.WithMetadata)
	assert.Equal(t, 0.0, s.AvgKeywords)
	assert.Empty(t, s.ClusterCounts)
}
