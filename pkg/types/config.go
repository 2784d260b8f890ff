package types

import "errors"

// Config holds driver selection and connection parameters for opening a
// store handle. The engine itself never opens connections; Config is
// consumed by the composing application (modelctl, tests).
type Config struct {
	Driver string `json:"driver" yaml:"driver"`
	DSN    string `json:"dsn" yaml:"dsn"`
}

// Supported driver names.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// Config validation errors.
var (
	ErrDriverEmpty = errors.New("driver must not be empty")
	ErrDSNEmpty    = errors.New("dsn must not be empty")
)

// knownDrivers lists the drivers that Validate accepts.
var knownDrivers = map[string]bool{
	DriverSQLite:   true,
	DriverMySQL:    true,
	DriverPostgres: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Driver == "" {
		return ErrDriverEmpty
	}
	if !knownDrivers[c.Driver] {
		return ErrUnknownDriver
	}
	if c.DSN == "" {
		return ErrDSNEmpty
	}
	return nil
}
