package doctor

import "errors"

// ErrUnavailable marks a lookup that could not produce an answer (command
// missing, offline registry, timeout). It is scoped to a single check.
var ErrUnavailable = errors.New("lookup unavailable")

// Status is the outcome of a single check.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarn    Status = "warn"
	StatusFail    Status = "fail"
	StatusUnknown Status = "unknown"
)

// Result is the outcome of one check.
type Result struct {
	Name    string // check name: install, version, runtime
	Status  Status
	Message string
	Tip     string // optional remediation hint
}

// VersionInfo compares the running version with the published one.
type VersionInfo struct {
	Local           string // empty when it could not be determined
	Latest          string // empty when the lookup failed
	UpdateAvailable bool
}

// Report is the full doctor output.
type Report struct {
	Results   []Result
	Version   VersionInfo
	IssuesURL string
}

// Counts returns how many checks ended in each status.
func (r Report) Counts() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, res := range r.Results {
		counts[res.Status]++
	}
	return counts
}
