package pathfinder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{in: "bfs", want: BreadthFirst},
		{in: "DFS", want: DepthFirst},
		{in: " Bfs ", want: BreadthFirst},
		{in: "astar", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownAlgorithm)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithms(t *testing.T) {
	got, err := ParseAlgorithms("bfs, dfs,bfs")
	require.NoError(t, err)
	assert.Equal(t, []Algorithm{BreadthFirst, DepthFirst, BreadthFirst}, got)

	_, err = ParseAlgorithms("bfs,,dfs")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestFind_UnknownAlgorithm(t *testing.T) {
	_, ok, err := Find(square(), Algorithm("greedy"), "A", "D")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "greedy")
}

func TestFind_Dispatch(t *testing.T) {
	g := detour()

	path, ok, err := Find(g, BreadthFirst, "A", "E")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Path{"A", "B", "E"}, path)

	path, ok, err = Find(g, DepthFirst, "A", "E")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Path{"A", "C", "D", "F", "E"}, path)
}
