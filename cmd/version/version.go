package version

import (
	"fmt"
)

// Set at build time via -ldflags "-X github.com/scan-io-git/sarif2md/cmd/version.CoreVersion=...".
var (
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// Versions holds build information for the binary.
type Versions struct {
	Version       string `json:"version"`
	GolangVersion string `json:"golang_version"`
	BuildTime     string `json:"build_time"`
}

// Current returns the build information compiled into the binary.
func Current() Versions {
	return Versions{
		Version:       CoreVersion,
		GolangVersion: GolangVersion,
		BuildTime:     BuildTime,
	}
}

// Template renders versions for cobra's --version flag.
// Braces are escaped because cobra parses the result as a text/template.
func Template(versions Versions) string {
	return fmt.Sprintf("Version: v%s\nGo Version: %s\nBuild Time: %s\n",
		escape(versions.Version), escape(versions.GolangVersion), escape(versions.BuildTime))
}

func escape(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '{':
			out = append(out, []rune(`{{"{"}}`)...)
		case '}':
			out = append(out, []rune(`{{"}"}}`)...)
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
