/*
go-updatecheck finds out if a newer release of your application has been published,
without ever getting in the way of the application: any failure means "no update".

- Fetches the latest release from GitHub (default), Gitea, GitLab or a static manifest on any web server

- Compares its version tag (major.minor.patch, with or without a "v" prefix) with the running version

- Returns the release page to open when an update is available

Example:

	checker, err := updatecheck.NewChecker(updatecheck.Config{
		Repository: updatecheck.ParseSlug("owner/app"),
	})
	if err != nil {
		return err
	}
	decision := checker.CheckForUpdates(ctx, version)
	if decision.HasUpdate {
		fmt.Printf("Version %s is available: %s\n", decision.LatestVersion, decision.DownloadURL)
	}

Small CLI tools as wrapper of this library are available also:

	github.com/creativeprojects/go-updatecheck/cmd/check-update
	github.com/creativeprojects/go-updatecheck/cmd/serve-repo
*/
package updatecheck
