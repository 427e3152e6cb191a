package version

// Version is the taxmerge release version. Override at build time with
// -ldflags "-X taxmerge/internal/version.Version=...".
var Version = "0.1.0"
