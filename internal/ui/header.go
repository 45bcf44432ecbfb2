package ui

import (
	"fmt"

	"github.com/renato0307/flowpomo/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Focus until the timer runs out, then keep going",
	Version:   "dev",
}

// versionInfo holds the global version info set by SetVersionInfo
var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, the signed in user, and the tagline.
// In dev mode the version details are appended to the name line.
func renderHeader(devMode bool, userID string) string {
	line := theme.AppNameStyle.Render("flowpomo")
	if userID != "" {
		line += theme.SubtleStyle.Render(" · " + userID)
	} else {
		line += theme.SubtleStyle.Render(" · not signed in, sessions are not saved")
	}
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}
	return line + "\n" + theme.TaglineStyle.Render(versionInfo.Tagline)
}
