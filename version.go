package commontags

import "runtime"

// Version is the semantic version of the commontags library.
const Version = "0.3.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version       string `json:"version" yaml:"version"`
	SchemaVersion int    `json:"schemaVersion" yaml:"schemaVersion"`
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`
	// BuildTime is the build timestamp (set via ldflags at build time)
	BuildTime string `json:"buildTime" yaml:"buildTime"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime are populated at build time via -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/commontags.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/commontags.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:       Version,
		SchemaVersion: SchemaVersion,
		GitCommit:     gitCommit,
		BuildTime:     buildTime,
		GoVersion:     goVer,
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
