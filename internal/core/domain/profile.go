package domain

import "strings"

// Profile is one Firefox profile directory holding the places and
// favicons databases.
type Profile struct {
	// Path is the absolute path of the profile directory.
	// It is the profile's identity and is compared case-insensitively,
	// since the directories may live on case-insensitive filesystems.
	Path string

	// Name is the human-readable profile name, usually the directory
	// base name.
	Name string

	// Enabled controls whether the profile participates in searches.
	Enabled bool
}

// SamePath reports whether two paths identify the same profile.
func SamePath(a, b string) bool {
	return strings.EqualFold(a, b)
}

// MergeProfiles folds incoming profiles into the base list. Profiles
// already present in base (matched by path, case-insensitively) only
// have their Enabled flag taken from incoming; unknown incoming
// profiles are appended. Base order is preserved, profiles are never
// dropped.
func MergeProfiles(base, incoming []Profile) []Profile {
	merged := make([]Profile, len(base))
	copy(merged, base)

outer:
	for _, in := range incoming {
		for i := range merged {
			if SamePath(merged[i].Path, in.Path) {
				merged[i].Enabled = in.Enabled
				continue outer
			}
		}
		merged = append(merged, in)
	}

	return merged
}

// EnabledProfiles returns the enabled subset in the original order.
func EnabledProfiles(profiles []Profile) []Profile {
	var enabled []Profile //nolint:prealloc // enabled count unknown
	for _, p := range profiles {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	return enabled
}
