package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterFromPath(t *testing.T) {
	cases := map[string]Filter{
		"/":           FilterAll,
		"":            FilterAll,
		"/active":     FilterActive,
		"/active/":    FilterActive,
		"/completed":  FilterCompleted,
		" /completed": FilterCompleted,
		"/Active":     FilterActive,
	}
	for in, want := range cases {
		got, err := FilterFromPath(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := FilterFromPath("/archived")
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("Completed")
	require.NoError(t, err)
	assert.Equal(t, FilterCompleted, f)

	f, err = ParseFilter("/active")
	require.NoError(t, err)
	assert.Equal(t, FilterActive, f)

	_, err = ParseFilter("done")
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestFilterRoundTripsThroughPath(t *testing.T) {
	for _, f := range Filters {
		got, err := FilterFromPath(f.Path())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestFilterCycle(t *testing.T) {
	assert.Equal(t, FilterActive, FilterAll.Next())
	assert.Equal(t, FilterAll, FilterCompleted.Next())
	assert.Equal(t, FilterCompleted, FilterAll.Prev())
}

func TestFilterMatch(t *testing.T) {
	done := Task{ID: "d", IsDone: true}
	open := Task{ID: "o"}

	assert.True(t, FilterAll.Match(done))
	assert.True(t, FilterAll.Match(open))
	assert.True(t, FilterActive.Match(open))
	assert.False(t, FilterActive.Match(done))
	assert.True(t, FilterCompleted.Match(done))
	assert.False(t, FilterCompleted.Match(open))
}
