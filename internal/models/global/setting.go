package global

import "time"

type Settings struct {
	Server Server `yaml:"server"`
	Log    Log    `yaml:"log"`
}

type Server struct {
	Listen       string   `yaml:"listen"`
	DocumentRoot string   `yaml:"document_root"`
	Concurrency  int      `yaml:"concurrency"`
	Confine      *bool    `yaml:"confine"`
	Timeouts     Timeouts `yaml:"timeouts"`
	Limits       Limits   `yaml:"limits"`
}

// Confined reports whether host and path hardening is on. Unset means on.
func (s Server) Confined() bool {
	return s.Confine == nil || *s.Confine
}

type Timeouts struct {
	Read  time.Duration `yaml:"read"`
	Write time.Duration `yaml:"write"`
}

type Limits struct {
	MaxHeaderBytes int `yaml:"max_header_bytes"`
}

type Log struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	VerboseHeaders bool   `yaml:"verbose_headers"`
}
