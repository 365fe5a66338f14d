package updatecheck

import "context"

// CheckForUpdates checks the latest GitHub release of the slug (owner/repo) against the current version.
// This function is a shortcut version of checker.CheckForUpdates using the default GitHub source.
func CheckForUpdates(ctx context.Context, slug, currentVersion string) Decision {
	return Check(ctx, slug, currentVersion).Decision
}

// Check checks the latest GitHub release of the slug (owner/repo) against the current version.
// This function is a shortcut version of checker.Check using the default GitHub source.
func Check(ctx context.Context, slug, currentVersion string) Result {
	checker, err := NewChecker(Config{Repository: ParseSlug(slug)})
	if err != nil {
		log.Printf("Cannot check for updates: %s", err)
		return failure(currentVersion, OutcomeInvalidInput, err)
	}
	return checker.Check(ctx, currentVersion)
}
