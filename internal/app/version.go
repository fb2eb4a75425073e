package app

import "fmt"

// Name identifies the service in logs, health output and the CLI.
const Name = "localcrm"

// Set with -ldflags "-X github.com/heartmarshall/localcrm/internal/app.Version=1.2.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the long form printed by `crm --version` and logged at
// startup.
func BuildVersion() string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", Name, Version, Commit, BuildTime)
}
