// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Surface build-time VCS state through --version.
package version

import "runtime/debug"

// GetVersion returns the VCS revision baked into the binary, shortened to
// 7 characters, with a "(dirty)" suffix for modified trees. Falls back to
// "dev" when build info is unavailable.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	revision := ""
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if dirty {
		return revision + " (dirty)"
	}
	return revision
}
