// Package config manages agentlint's own configuration via Viper.
//
// Configuration is read from config.yaml in the current directory or the
// XDG config home ($XDG_CONFIG_HOME/agentlint), with AGENTLINT_* environment
// variables taking precedence. All fields have defaults, so a missing file
// is not an error.
//
// This package configures the linter itself; the tool configuration files
// that agentlint validates are handled by internal/toolconfig.
package config
