package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
	"sync"
)

// DefaultVersion is reported when no version was configured
const DefaultVersion = "dev"

// VersionInfo describes the running binary
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Version, BuildTime and GitCommit can be set with -ldflags; VCS stamps from
// the Go toolchain fill whatever is left empty.
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

var buildInfo = sync.OnceValue(func() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		fillFromBuildSettings(&info, bi.Settings)
	}
	if info.Version == "" {
		info.Version = DefaultVersion
	}
	return info
})

func fillFromBuildSettings(info *VersionInfo, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// HandleVersion returns version information about the running binary
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, buildInfo())
	}
}
