package config

// Config is the fully merged configuration
type Config struct {
	PackageRoot string       `koanf:"package_root"`
	Home        string       `koanf:"home"`
	Linker      LinkerConfig `koanf:"linker"`
	Probe       ProbeConfig  `koanf:"probe"`
}

// LinkerConfig selects the external linking tool
type LinkerConfig struct {
	Command   string   `koanf:"command"`
	ExtraArgs []string `koanf:"extra_args"`
}

// ProbeConfig tunes path resolution
type ProbeConfig struct {
	MaxDepth int `koanf:"max_depth"`
}

// Config keys, usable as override map keys
const (
	KeyPackageRoot     = "package_root"
	KeyHome            = "home"
	KeyLinkerCommand   = "linker.command"
	KeyLinkerExtraArgs = "linker.extra_args"
	KeyProbeMaxDepth   = "probe.max_depth"
)
