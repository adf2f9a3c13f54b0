package pagination

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComputesNeighbours(t *testing.T) {
	first := New([]string{"a"}, 25, 10, 1)
	assert.EqualValues(t, 3, first.TotalPages)
	require.NotNil(t, first.NextPage)
	assert.Equal(t, 2, *first.NextPage)
	assert.Nil(t, first.PrevPage)

	last := New([]string{"a"}, 25, 10, 3)
	assert.Nil(t, last.NextPage)
	require.NotNil(t, last.PrevPage)
	assert.Equal(t, 2, *last.PrevPage)

	beyond := New[string](nil, 25, 10, 4)
	assert.Empty(t, beyond.Rows)
	assert.Nil(t, beyond.NextPage)
	assert.Nil(t, beyond.PrevPage)
}

func TestNewEmptyResult(t *testing.T) {
	p := New[int](nil, 0, 10, 1)
	assert.EqualValues(t, 0, p.TotalPages)
	assert.Nil(t, p.NextPage)
	assert.Nil(t, p.PrevPage)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":[],"totalRows":0,"totalPages":0,"limitPerPage":10,"currentPage":1,"nextPage":null,"prevPage":null}`, string(data))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 10))
	assert.Equal(t, 20, Offset(3, 10))
	assert.Equal(t, 0, Offset(0, 10))
}
