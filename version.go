// Package quill is a multi-line text prompt for terminals.
//
// The editor package runs an edit session; render and input hold the
// terminal output and key decoding it is built on.
package quill

import (
	_ "embed"
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the release without the leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Banner is the -version line of the quill command: name, release, Go
// version and platform.
func Banner() string {
	return fmt.Sprintf("quill %s (%s %s/%s)", Version(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// IsSemver reports whether v is a SemVer 2.0.0 version without a v prefix.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
