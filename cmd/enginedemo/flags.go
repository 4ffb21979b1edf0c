package main

import "flag"

// parseFlags parses command-line flags into a DemoConfig, starting
// from DefaultDemoConfig.
func parseFlags() DemoConfig {
	cfg := DefaultDemoConfig()
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed for the demo scenario")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level: debug, info, warn, error")
	flag.Parse()
	return cfg
}
