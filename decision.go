package updatecheck

import "fmt"

// Decision is the answer to "is there a newer release than the one running?"
type Decision struct {
	// HasUpdate is true when the latest release is strictly greater than the current version
	HasUpdate bool `json:"hasUpdate"`
	// LatestVersion is the version of the latest release, without the "v" prefix.
	// It is the current version when the latest release could not be found.
	LatestVersion string `json:"latestVersion"`
	// CurrentVersion is the version of the running application, as given to the checker
	CurrentVersion string `json:"currentVersion"`
	// DownloadURL is the release page to browse. It is only set when HasUpdate is true
	DownloadURL string `json:"downloadUrl,omitempty"`
}

func noUpdate(currentVersion string) Decision {
	return Decision{
		HasUpdate:      false,
		LatestVersion:  currentVersion,
		CurrentVersion: currentVersion,
	}
}

// Outcome describes which path the check has taken to reach its decision.
type Outcome int

const (
	// OutcomeSuccess means the latest release was fetched and compared
	OutcomeSuccess Outcome = iota
	// OutcomeTransportError means the release provider could not be reached
	OutcomeTransportError
	// OutcomeResponseError means the provider answered with something that is not a usable release
	OutcomeResponseError
	// OutcomeInvalidInput means the current version or the repository cannot be used
	OutcomeInvalidInput
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeTransportError:
		return "transport error"
	case OutcomeResponseError:
		return "response error"
	case OutcomeInvalidInput:
		return "invalid input"
	}
	return fmt.Sprintf("unknown %T = %d", o, int(o))
}

// Result is the decision along with how it was reached.
// All the failed outcomes carry the same decision: no update available.
type Result struct {
	Decision
	Outcome Outcome
	// Err is the reason of a failed outcome
	Err error
	// Release is the latest release, only available on success
	Release *Release
}
