package version

import (
	"fmt"
	"runtime"
)

// Build information, overridden at link time via -ldflags.
var (
	// Version is the semantic version of the build
	Version = "dev"
	// Commit is the git commit the binary was built from
	Commit = "unknown"
	// Date is the build date
	Date = "unknown"
)

// Info contains version information about the binary
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo returns the version information for this build
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Short returns the short version string
func (i Info) Short() string {
	return i.Version
}

// String returns a multi-line version description
func (i Info) String() string {
	return fmt.Sprintf("Version:    %s\nCommit:     %s\nBuilt:      %s\nGo version: %s\nPlatform:   %s",
		i.Version, i.Commit, i.Date, i.GoVersion, i.Platform)
}
