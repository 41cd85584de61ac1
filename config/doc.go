// Package config loads ledger settings from the environment.
//
// Values come, in increasing precedence, from the field defaults, an
// optional .env file in the working directory, LEDGER_* environment
// variables and functional options (normally command line flags).
//
//	cfg, err := config.Load(config.WithDataDir("testdata"))
package config
