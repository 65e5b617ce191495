package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)

	b, err := json.Marshal(struct {
		Fecha Date `json:"fecha"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":"2025-03-01"}`, string(b))

	var out struct {
		Fecha Date `json:"fecha"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fecha":"2024-12-31"}`), &out))
	assert.Equal(t, "2024-12-31", out.Fecha.String())

	assert.Error(t, json.Unmarshal([]byte(`{"fecha":"31/12/2024"}`), &out))
}

func TestNewDateTruncates(t *testing.T) {
	d := NewDate(time.Date(2025, 5, 4, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, "2025-05-04", d.String())
	assert.Equal(t, 0, d.Hour())
}

func TestRoleAndStatusValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUsuario.Valid())
	assert.False(t, RoleType("root").Valid())
	assert.True(t, CourseActive.Valid())
	assert.False(t, CourseStatus("pausado").Valid())
}
