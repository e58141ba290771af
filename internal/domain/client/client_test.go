package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient("Youssef Amrani", "+212600000001", "youssef@example.com", nil, nil)
	require.NoError(t, err)
	return c
}

func TestNewClient_ValidInput(t *testing.T) {
	gender := GenderMale

	c, err := NewClient("  Youssef Amrani  ", " +212600000001 ", "youssef@example.com", &gender, nil)

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "Youssef Amrani", c.FullName(), "name should be trimmed")
	assert.Equal(t, "+212600000001", c.Phone())
	assert.Equal(t, &gender, c.Gender())
	assert.Nil(t, c.FingerprintID())
	assert.Equal(t, 1, c.Version())
}

func TestNewClient_RequiresNameAndPhone(t *testing.T) {
	c, err := NewClient("", "+212600000001", "", nil, nil)
	assert.Error(t, err)
	assert.Nil(t, c)

	c, err = NewClient("Youssef", "", "", nil, nil)
	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestNewClient_InvalidGender(t *testing.T) {
	g := Gender("unknown")

	c, err := NewClient("Youssef", "+212600000001", "", &g, nil)

	assert.Error(t, err)
	assert.Nil(t, c)
}

func TestClient_UpdateContact(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.UpdateContact("Youssef A.", "+212600000002", "new@example.com"))

	assert.Equal(t, "Youssef A.", c.FullName())
	assert.Equal(t, "+212600000002", c.Phone())
	assert.Equal(t, "new@example.com", c.Email())
	assert.Equal(t, 2, c.Version())

	assert.Error(t, c.UpdateContact("", "+212600000002", ""))
}

func TestClient_FingerprintLifecycle(t *testing.T) {
	c := newTestClient(t)

	assert.Error(t, c.EnrollFingerprint(""))

	require.NoError(t, c.EnrollFingerprint("FP-7f3a"))
	require.NotNil(t, c.FingerprintID())
	assert.Equal(t, "FP-7f3a", *c.FingerprintID())

	c.ClearFingerprint()
	assert.Nil(t, c.FingerprintID())

	// clearing twice is a no-op
	version := c.Version()
	c.ClearFingerprint()
	assert.Equal(t, version, c.Version())
}

func TestClient_SetID(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SetID(9))
	assert.Equal(t, uint(9), c.ID())
	assert.Error(t, c.SetID(10))
}
