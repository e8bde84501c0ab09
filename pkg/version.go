package kvdata

var (
	// Version of kvdata.
	Version = "v0.1.0"

	// Build timestamp, set during the build.
	Build = "n/a"
)
