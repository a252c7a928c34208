// Package version exposes the build identity stamped into the binary.
// Release builds override these with -ldflags -X; everything else reads
// them through here instead of re-declaring its own.
package version

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
