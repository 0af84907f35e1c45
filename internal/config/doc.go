// Package config provides the configuration of the HKS server and CLI:
// defaults, validation, the optional .hks YAML file and XDG directories.
package config
