package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/foxfind/internal/core/domain"
)

func TestProfilesCmd_Use(t *testing.T) {
	assert.Equal(t, "profiles", profilesCmd.Use)
}

func TestProfilesListCmd_PrintsProfiles(t *testing.T) {
	profiles := &fakeProfileService{profiles: []domain.Profile{
		{Path: "/p/alpha", Name: "alpha", Enabled: true},
		{Path: "/p/beta", Name: "beta", Enabled: false},
	}}

	out, err := executeCommand(t, &fakeSearchService{}, profiles, &fakeActionService{},
		"profiles", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "[*] alpha (/p/alpha)")
	assert.Contains(t, out, "[ ] beta (/p/beta)")
}

func TestProfilesListCmd_Empty(t *testing.T) {
	out, err := executeCommand(t, &fakeSearchService{}, &fakeProfileService{}, &fakeActionService{},
		"profiles", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "No profiles configured")
}

func TestProfilesDiscoverCmd(t *testing.T) {
	profiles := &fakeProfileService{profiles: []domain.Profile{
		{Path: "/p/found", Name: "found", Enabled: true},
	}}

	out, err := executeCommand(t, &fakeSearchService{}, profiles, &fakeActionService{},
		"profiles", "discover")

	require.NoError(t, err)
	assert.Contains(t, out, "/p/found")
}

func TestProfilesEnableCmd(t *testing.T) {
	profiles := &fakeProfileService{}

	out, err := executeCommand(t, &fakeSearchService{}, profiles, &fakeActionService{},
		"profiles", "enable", "/p/alpha")

	require.NoError(t, err)
	assert.Equal(t, "/p/alpha", profiles.enabledPath)
	assert.True(t, profiles.enabledFlag)
	assert.Contains(t, out, "Enabled /p/alpha")
}

func TestProfilesDisableCmd(t *testing.T) {
	profiles := &fakeProfileService{}

	out, err := executeCommand(t, &fakeSearchService{}, profiles, &fakeActionService{},
		"profiles", "disable", "/p/alpha")

	require.NoError(t, err)
	assert.Equal(t, "/p/alpha", profiles.enabledPath)
	assert.False(t, profiles.enabledFlag)
	assert.Contains(t, out, "Disabled /p/alpha")
}

func TestProfilesEnableCmd_UnknownProfile(t *testing.T) {
	profiles := &fakeProfileService{err: errors.New("profile not found")}

	_, err := executeCommand(t, &fakeSearchService{}, profiles, &fakeActionService{},
		"profiles", "enable", "/p/missing")

	assert.Error(t, err)
}
