package fbslide

import _ "embed"

// Version is the release version, stamped into the .version file by the
// release workflow.
//
//go:embed .version
var Version string

// DefaultConfig is the config file installed by `fbslide --installconfig`.
//
//go:embed fbslide.toml
var DefaultConfig string
