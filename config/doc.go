// Package config holds vertexrank run settings backed by Viper, and builds
// the zerolog logger used by the pipeline and the CLI.
//
// Defaults:
//
//	metrics    [degree]
//	top        5
//	workers    runtime.NumCPU()
//	timeout    0 (no deadline)
//	log.level  info
//	log.format console
//
// alpha has no default; Katz runs fail with centrality.ErrBadAlpha until
// one is given.
package config
