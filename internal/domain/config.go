package domain

import "time"

// SourceKind selects the sampling backend.
type SourceKind string

const (
	// SourceCommand parses the output of top, free and df.
	SourceCommand SourceKind = "command"
	// SourceNative reads the kernel counters through gopsutil.
	SourceNative SourceKind = "native"
)

// Config mirrors the optional YAML file passed with --config.
type Config struct {
	Source         SourceKind    `yaml:"source"`
	CPUInterval    time.Duration `yaml:"cpu_interval"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	DiskPath       string        `yaml:"disk_path"`
	Commands       Commands      `yaml:"commands"`
}

// Commands overrides the utility binaries used by the command source.
type Commands struct {
	Top  string `yaml:"top"`
	Free string `yaml:"free"`
	DF   string `yaml:"df"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Source:         SourceCommand,
		CPUInterval:    DefaultCPUInterval,
		CommandTimeout: DefaultCommandTimeout,
		DiskPath:       DefaultDiskPath,
		Commands: Commands{
			Top:  "top",
			Free: "free",
			DF:   "df",
		},
	}
}
