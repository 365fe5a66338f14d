package updatecheck

// RepositoryID is a numeric project ID, as used by GitLab.
type RepositoryID int

// Repository interface
var _ Repository = RepositoryID(0)

// NewRepositoryID creates a repository ID from an integer
func NewRepositoryID(id int) RepositoryID {
	return RepositoryID(id)
}

// GetSlug always fails: a numeric ID cannot be turned into an owner and a name
func (r RepositoryID) GetSlug() (string, string, error) {
	return "", "", ErrInvalidID
}

func (r RepositoryID) Get() (interface{}, error) {
	return int(r), nil
}
