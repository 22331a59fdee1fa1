// Package version holds build metadata set through -ldflags, e.g.
//
//	go build -ldflags "-X github.com/doeshing/vmhealth/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build information. Commit and BuildDate stay empty for local builds.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// Info is the resolved build metadata of the running binary.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	Modified  bool
	GoVersion string
	Platform  string
}

// Get resolves build metadata, falling back to the VCS stamp the Go
// toolchain embeds when -ldflags did not set a commit.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		applyBuildSettings(&info, bi.Settings)
	}
	return info
}

func applyBuildSettings(info *Info, settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.BuildDate == "" {
				info.BuildDate = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
}

// String renders a one-line summary, e.g.
// "vmhealth 1.2.0 (3f2a9c1, 2026-10-01T12:00:00Z) go1.25.3 linux/amd64".
func (i Info) String() string {
	var meta []string
	if i.Commit != "" {
		commit := i.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		if i.Modified {
			commit += "-dirty"
		}
		meta = append(meta, commit)
	}
	if i.BuildDate != "" {
		meta = append(meta, i.BuildDate)
	}

	line := "vmhealth " + i.Version
	if len(meta) > 0 {
		line += " (" + strings.Join(meta, ", ") + ")"
	}
	return fmt.Sprintf("%s %s %s", line, i.GoVersion, i.Platform)
}
