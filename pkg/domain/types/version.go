package types

// Version is the herald release version, overwritten at build time via
// -ldflags "-X github.com/m-mizutani/herald/pkg/domain/types.Version=...".
var Version = "0.1.0"
