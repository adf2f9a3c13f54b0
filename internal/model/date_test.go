package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2021-08-11")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2021-08-11"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back.Time))

	assert.Error(t, json.Unmarshal([]byte(`"11/08/2021"`), &back))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2022, 3, 4, 15, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2022-03-04", d.String())

	require.NoError(t, d.Scan("2023-01-02T00:00:00Z"))
	assert.Equal(t, "2023-01-02", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDatePtr(t *testing.T) {
	d, err := DatePtr("  ")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = DatePtr("2020-02-29")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2020-02-29", d.String())

	_, err = DatePtr("2021-02-29")
	assert.Error(t, err)
}

func TestRoleIsManager(t *testing.T) {
	assert.True(t, Role{Name: "Gerente General"}.IsManager())
	assert.True(t, Role{Name: "subgerente"}.IsManager())
	assert.False(t, Role{Name: "Asistente"}.IsManager())
}
