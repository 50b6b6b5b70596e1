package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSamePath(t *testing.T) {
	assert.True(t, SamePath("/home/u/.mozilla/firefox/abc.default", "/home/u/.mozilla/firefox/abc.default"))
	assert.True(t, SamePath("/Home/U/Profile", "/home/u/profile"))
	assert.False(t, SamePath("/home/u/a", "/home/u/b"))
}

func TestMergeProfiles_UpdatesEnabledFlag(t *testing.T) {
	base := []Profile{
		{Path: "/p/one", Name: "one", Enabled: true},
		{Path: "/p/two", Name: "two", Enabled: true},
	}
	incoming := []Profile{
		{Path: "/p/two", Name: "two", Enabled: false},
	}

	merged := MergeProfiles(base, incoming)

	require.Len(t, merged, 2)
	assert.True(t, merged[0].Enabled)
	assert.False(t, merged[1].Enabled)
}

func TestMergeProfiles_MatchesCaseInsensitively(t *testing.T) {
	base := []Profile{{Path: "/P/One", Name: "One", Enabled: true}}
	incoming := []Profile{{Path: "/p/one", Name: "one", Enabled: false}}

	merged := MergeProfiles(base, incoming)

	require.Len(t, merged, 1)
	assert.Equal(t, "/P/One", merged[0].Path)
	assert.False(t, merged[0].Enabled)
}

func TestMergeProfiles_AppendsUnknownProfiles(t *testing.T) {
	base := []Profile{{Path: "/p/one", Name: "one", Enabled: true}}
	incoming := []Profile{{Path: "/p/new", Name: "new", Enabled: false}}

	merged := MergeProfiles(base, incoming)

	require.Len(t, merged, 2)
	assert.Equal(t, "/p/one", merged[0].Path)
	assert.Equal(t, "/p/new", merged[1].Path)
}

func TestMergeProfiles_PreservesBaseOrder(t *testing.T) {
	base := []Profile{
		{Path: "/p/a"},
		{Path: "/p/b"},
		{Path: "/p/c"},
	}
	incoming := []Profile{
		{Path: "/p/c", Enabled: true},
		{Path: "/p/a", Enabled: true},
	}

	merged := MergeProfiles(base, incoming)

	require.Len(t, merged, 3)
	assert.Equal(t, "/p/a", merged[0].Path)
	assert.Equal(t, "/p/b", merged[1].Path)
	assert.Equal(t, "/p/c", merged[2].Path)
}

func TestMergeProfiles_DoesNotMutateBase(t *testing.T) {
	base := []Profile{{Path: "/p/one", Enabled: true}}
	incoming := []Profile{{Path: "/p/one", Enabled: false}}

	_ = MergeProfiles(base, incoming)

	assert.True(t, base[0].Enabled)
}

func TestEnabledProfiles(t *testing.T) {
	profiles := []Profile{
		{Path: "/p/a", Enabled: true},
		{Path: "/p/b", Enabled: false},
		{Path: "/p/c", Enabled: true},
	}

	enabled := EnabledProfiles(profiles)

	require.Len(t, enabled, 2)
	assert.Equal(t, "/p/a", enabled[0].Path)
	assert.Equal(t, "/p/c", enabled[1].Path)
}

func TestEnabledProfiles_Empty(t *testing.T) {
	assert.Empty(t, EnabledProfiles(nil))
	assert.Empty(t, EnabledProfiles([]Profile{{Path: "/p/a", Enabled: false}}))
}
