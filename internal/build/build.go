// Package build holds build-time information.
package build

// Version is the catsync release. Release builds set it with
// -ldflags "-X go.trai.ch/catsync/internal/build.Version=<tag>".
var Version = "dev"
