// Package version provides build and version information.
package version

import "fmt"

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Parallel batch conversion, CSV/JSON export, interactive calculator
// 0.2.0 - B1950 converter, sexagesimal coordinate input
// 0.1.0 - Initial release: J2000 HJD conversion of single JDs

// String returns the version line printed by -version.
func String(program string) string {
	return fmt.Sprintf("%s v%s", program, Version)
}
