// Package types defines the Store interface, configuration, result types,
// and standard errors for the steward data layer.
package types

import "errors"

// Config holds driver selection and connection parameters for opening a Store.
// It is immutable after construction; build it once from the environment at
// process start.
type Config struct {
	Driver         string `json:"driver" yaml:"driver"`
	Host           string `json:"host" yaml:"host"`
	Port           int    `json:"port" yaml:"port"`
	User           string `json:"user" yaml:"user"`
	Password       string `json:"password" yaml:"password"`
	Database       string `json:"database" yaml:"database"`
	MaxConns       int    `json:"max_conns" yaml:"max_conns"`
	RejectWhenBusy bool   `json:"reject_when_busy" yaml:"reject_when_busy"`
}

// Supported driver names.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Defaults applied by Normalize.
const (
	DefaultPort     = 3306
	DefaultMaxConns = 10
)

// Config validation errors.
var (
	ErrDriverEmpty     = errors.New("driver must not be empty")
	ErrDriverUnknown   = errors.New("unknown driver")
	ErrDatabaseEmpty   = errors.New("database must not be empty")
	ErrMaxConnsInvalid = errors.New("max conns must not be negative")
)

// knownDrivers lists the drivers that Validate accepts.
var knownDrivers = map[string]bool{
	DriverMySQL:  true,
	DriverSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	if c.Driver == "" {
		return ErrDriverEmpty
	}
	if !knownDrivers[c.Driver] {
		return ErrDriverUnknown
	}
	if c.Database == "" {
		return ErrDatabaseEmpty
	}
	if c.MaxConns < 0 {
		return ErrMaxConnsInvalid
	}
	return nil
}

// Normalize returns a copy of the Config with zero-valued fields replaced by
// defaults (port 3306, pool size 10).
func (c Config) Normalize() Config {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MaxConns == 0 {
		c.MaxConns = DefaultMaxConns
	}
	return c
}
