package version

// Version is the hkctl release tag, stamped at build time via
// -ldflags; 'dev' for local builds.
var Version string = "dev"
