// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct parsing. Every package that needs
// settings declares its own struct with env tags, and the binaries load them
// through this package:
//
//	var cfg storage.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// The first Load reads ./.env when it exists. LoadEnv reads additional files;
// variables already present in the process environment always take
// precedence over file values.
//
// Parsed values are cached per type, so repeated Load calls are cheap and
// return identical values. ForceReloadConfig and ResetCache bypass the cache,
// which is mostly useful in tests that change the environment.
//
// Errors are sentinel values: ErrParsingConfig for invalid or missing values,
// ErrLoadEnv for unreadable .env files and ErrNilPointer for a nil target.
package config
