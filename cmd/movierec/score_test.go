package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/movie-recommender/internal/recommend"
)

func TestSortBreakdownsKeepsCatalogOrderOnTies(t *testing.T) {
	breakdowns := []*recommend.Breakdown{
		{MovieID: 3, Total: 28},
		{MovieID: 4, Total: 28},
		{MovieID: 2, Total: 82},
		{MovieID: 6, Total: 20},
	}

	sortBreakdowns(breakdowns)

	got := make([]int64, len(breakdowns))
	for i, b := range breakdowns {
		got[i] = b.MovieID
	}
	assert.Equal(t, []int64{2, 3, 4, 6}, got)
}
