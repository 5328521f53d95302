package version

// Version is overridden at build time with -ldflags "-X bowling/internal/version.Version=...".
var Version = "dev"
