package apitests

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetAndGet(t *testing.T) {
	store := NewStore()
	store.Set(FixtureKeyObjectID, "abc")

	value, err := store.Get(FixtureKeyObjectID)
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
}

func TestStoreGetOfMissingKeyReturnsMissingFixtureError(t *testing.T) {
	store := NewStore()

	_, err := store.Get(FixtureKeyObjectID)
	var mfe *MissingFixtureError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, FixtureKeyObjectID, mfe.Key)
	assert.Contains(t, err.Error(), FixtureKeyObjectID)
}

func TestStoreLastWriteWins(t *testing.T) {
	store := NewStore()
	store.Set(FixtureKeyObjectID, "first")
	store.Set(FixtureKeyObjectID, "second")

	value, err := store.Get(FixtureKeyObjectID)
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestStoreOrderIndexesIncreaseAcrossWrites(t *testing.T) {
	store := NewStore()
	store.Set("a", "1")
	store.Set("b", "2")
	store.Set("a", "3")

	entryB, err := store.GetEntry("b")
	require.NoError(t, err)
	entryA, err := store.GetEntry("a")
	require.NoError(t, err)
	assert.Greater(t, entryA.CreatedAt, entryB.CreatedAt,
		"rewritten entry should be newer than the entry written between its two writes")
}

func TestStoreClearRemovesValue(t *testing.T) {
	store := NewStore()
	store.Set(FixtureKeyObjectID, "abc")
	store.Clear(FixtureKeyObjectID)

	_, err := store.Get(FixtureKeyObjectID)
	require.Error(t, err)
}

func TestStoreClearOfMissingKeyIsANoOp(t *testing.T) {
	store := NewStore()
	store.Clear("never-set")
}
