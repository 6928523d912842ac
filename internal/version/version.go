package version

import "runtime/debug"

// Overridden at build time with
// -ldflags "-X github.com/kawertyff-source/Simungboxing-128/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
	Dirty   = "false"
)

type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Dirty   string `json:"dirty"`
}

// Get returns the linker-injected metadata, filling gaps from the VCS
// stamp the go tool embeds in module builds.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date, Dirty: Dirty}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			if Dirty == "false" && s.Value == "true" {
				info.Dirty = "true"
			}
		}
	}
	return info
}
