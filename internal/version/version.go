// Package version reports the CLI build and checks engine versions against
// the minimums the introspection queries rely on.
package version

import (
	"errors"
	"fmt"
	"regexp"
	"runtime"

	goversion "github.com/hashicorp/go-version"
	"github.com/satishbabariya/dbaccessor/internal/core/query/domain"
)

var (
	// Version is the version of the CLI
	Version = "0.1.0"
	// BuildDate is the build date
	BuildDate = "unknown"
	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// Info holds version information
type Info struct {
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
	Platform  string
}

// Get returns version information
func Get() Info {
	return Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a formatted version string
func (i Info) String() string {
	return fmt.Sprintf("dbaccessor version %s (%s %s)", i.Version, i.Platform, i.GoVersion)
}

// FullString returns a detailed version string
func (i Info) FullString() string {
	return fmt.Sprintf(`dbaccessor version %s
Build Date: %s
Git Commit: %s
Platform: %s
Go Version: %s`, i.Version, i.BuildDate, i.GitCommit, i.Platform, i.GoVersion)
}

// ErrEngineTooOld is returned by CheckEngine for engines below the minimum.
var ErrEngineTooOld = errors.New("engine version below supported minimum")

// MinimumEngine lists the oldest supported engine per dialect. SQLite needs
// table-valued pragma functions; the others need the information_schema
// columns that are queried.
var MinimumEngine = map[domain.Dialect]string{
	domain.SQLite:     "3.16.0",
	domain.PostgreSQL: "10.0",
	domain.MySQL:      "5.7.0",
}

// leadingVersion captures the numeric prefix of strings such as
// "16.2 (Debian 16.2-1)" or "8.0.36-0ubuntu0.22.04.1".
var leadingVersion = regexp.MustCompile(`^\d+(?:\.\d+)*`)

// ParseEngine parses the numeric part of an engine version string.
func ParseEngine(reported string) (*goversion.Version, error) {
	raw := leadingVersion.FindString(reported)
	if raw == "" {
		return nil, fmt.Errorf("invalid engine version %q", reported)
	}
	return goversion.NewVersion(raw)
}

// CheckEngine verifies that reported meets the minimum for dialect.
func CheckEngine(dialect domain.Dialect, reported string) error {
	minimum, ok := MinimumEngine[dialect]
	if !ok {
		return nil
	}

	current, err := ParseEngine(reported)
	if err != nil {
		return err
	}
	required := goversion.Must(goversion.NewVersion(minimum))

	if current.LessThan(required) {
		return fmt.Errorf("%w: %s %s < %s", ErrEngineTooOld, dialect, current, required)
	}
	return nil
}
