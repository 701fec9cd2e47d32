// Package version reports build metadata stamped at link time
package version

// BuildInfo holds version information about one stub binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service. version, commit and date are set with
//
//	-ldflags "-X 'stubdemo/internal/core/version.version=v0.1.0' -X 'stubdemo/internal/core/version.commit=abcd'"
func Info(service string) BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
