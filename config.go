package updatecheck

// Config represents the configuration of the update checker.
type Config struct {
	// Source where to load the latest release from (default to GitHubSource)
	Source Source
	// Repository to check for new releases (example: ParseSlug("owner/name")). This parameter has NO default value.
	Repository Repository
}
