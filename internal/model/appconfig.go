package model

// AppConfig holds tool-level preferences, stored as TOML next to the
// document. These belong to the installation, not to the user's launcher
// configuration, so they never ride through document migration.
type AppConfig struct {
	DataLocation string `toml:"data_location,omitempty"` // custom config dir
	ServePort    int    `toml:"serve_port,omitempty"`
	ReleaseURL   string `toml:"release_url,omitempty"` // override for update checks
}

// DefaultServePort is used when AppConfig doesn't set one.
const DefaultServePort = 4319

// DefaultAppConfig returns an empty app config; zero values mean "use
// the built-in defaults".
func DefaultAppConfig() *AppConfig {
	return &AppConfig{}
}

// Port returns the configured serve port, or the default.
func (c *AppConfig) Port() int {
	if c.ServePort > 0 {
		return c.ServePort
	}
	return DefaultServePort
}
