// Package config loads typed configuration from environment variables.
//
// A .env file in the working directory is loaded once on first use, then struct
// fields are filled by caarlos0/env according to their env tags. The parsed value
// of each type is cached for the life of the process.
//
//	import "github.com/dmitrymomot/gauth/core/config"
//
//	type EnrollConfig struct {
//		Issuer string `env:"GAUTH_ISSUER"`
//		QRSize int    `env:"GAUTH_QR_SIZE" envDefault:"256"`
//	}
//
//	var cfg EnrollConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Panics instead of returning an error; handy at startup.
//	config.MustLoad(&cfg)
//
// Loading the same type again returns the cached value even if the environment
// has changed since, while different types are cached independently.
package config
