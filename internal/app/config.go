package app

import "errors"

// Config holds all the configuration an App instance needs to run.
type Config struct {
	SuitePath string // .hcl file or directory of suite files

	Compiler  string // overrides the suite's toolchain compiler
	KeepGoing bool   // run remaining checks after a required failure
	NoColor   bool   // disable report colorization

	LogFormat string
	LogLevel  string
}

// NewConfig validates and returns a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SuitePath == "" {
		return nil, errors.New("SuitePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
