package updatecheck

// Repository identifies the project whose releases are checked.
type Repository interface {
	// GetSlug returns the owner and name of the repository
	GetSlug() (string, string, error)
	// Get returns the identifier expected by the release provider:
	// a "owner/name" string or an int project ID
	Get() (interface{}, error)
}
