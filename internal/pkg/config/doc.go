// Package config defines the settings blocks of the marketplace binaries and
// loads them from a YAML file with MARKETPLACE_ environment overrides.
package config
