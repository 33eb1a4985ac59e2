package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeID(path ...string) TestID { return TestID{Path: path} }

func TestRegexFiltersWithNoPatternsMatchEverything(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(makeID("anything")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("crud"))

	assert.True(t, f.AsFilter(makeID("crud", "create")))
	assert.False(t, f.AsFilter(makeID("negative", "unknown route")))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("lifecycle"))

	assert.True(t, f.AsFilter(makeID("crud", "create")))
	assert.False(t, f.AsFilter(makeID("lifecycle")))
}

func TestRegexFiltersCombineMatchAndNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("crud"))
	require.NoError(t, f.MustNotMatch.Set("delete"))

	assert.True(t, f.AsFilter(makeID("crud", "create")))
	assert.False(t, f.AsFilter(makeID("crud", "delete")))
}

func TestMustMatchRunsParentGroupsOfASelectedLeaf(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^crud$/^update object$"))

	assert.True(t, f.AsFilter(makeID("crud")),
		"group must run so its matching descendant can be reached")
	assert.True(t, f.AsFilter(makeID("crud", "update object")))
	assert.False(t, f.AsFilter(makeID("crud", "create object")))
	assert.False(t, f.AsFilter(makeID("negative")))
	assert.False(t, f.AsFilter(makeID("negative", "unknown route")))
}

func TestMustMatchLeavesDeeperComponentsUnconstrained(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^crud$"))

	assert.True(t, f.AsFilter(makeID("crud")))
	assert.True(t, f.AsFilter(makeID("crud", "anything at all")))
	assert.False(t, f.AsFilter(makeID("lifecycle")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("("))
}

func TestRegexListStringShowsAllPatterns(t *testing.T) {
	var list RegexList
	require.NoError(t, list.Set("a"))
	require.NoError(t, list.Set("b"))
	assert.Equal(t, `"a" or "b"`, list.String())
}
