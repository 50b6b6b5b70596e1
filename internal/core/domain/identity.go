package domain

// ResultIdentity is the opaque re-entry key for a previously streamed
// result. It carries only the values needed to reconstruct an icon
// lookup, never a live store handle, and is value-comparable.
type ResultIdentity struct {
	// URL is the page URL the icon is keyed by.
	URL string

	// Title is the original result title.
	Title string

	// Category is the original result category.
	Category Category

	// ProfilePath locates the profile whose icon store holds the icon.
	ProfilePath string
}

// IsZero reports whether the identity is empty.
func (id ResultIdentity) IsZero() bool {
	return id == ResultIdentity{}
}
