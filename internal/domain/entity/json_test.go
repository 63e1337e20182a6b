package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONValueEmptyIsNull(t *testing.T) {
	var empty JSON

	value, err := empty.Value()

	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestJSONScan(t *testing.T) {
	var j JSON

	require.NoError(t, j.Scan([]byte(`{"old_status": "scheduled", "attempt": 2}`)))
	assert.Equal(t, "scheduled", j["old_status"])
	assert.Equal(t, float64(2), j["attempt"])

	// drivers may hand back text instead of bytes
	require.NoError(t, j.Scan(`{"note": "ok"}`))
	assert.Equal(t, "ok", j["note"])

	require.NoError(t, j.Scan(nil))
	assert.Nil(t, j)

	assert.Error(t, j.Scan(42))
}

func TestStringArrayValueNilIsEmptyList(t *testing.T) {
	var a StringArray

	value, err := a.Value()

	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestStringArrayScan(t *testing.T) {
	var a StringArray

	require.NoError(t, a.Scan([]byte(`["ibuprofen","rest"]`)))
	assert.Equal(t, StringArray{"ibuprofen", "rest"}, a)

	require.NoError(t, a.Scan(nil))
	assert.Nil(t, a)
}

func TestMoodEntryIsFlagged(t *testing.T) {
	assert.True(t, (&MoodEntry{MoodScore: 1}).IsFlagged())
	assert.True(t, (&MoodEntry{MoodScore: 2}).IsFlagged())
	assert.False(t, (&MoodEntry{MoodScore: 3}).IsFlagged())
}
