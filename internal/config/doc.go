// Package config provides configuration structures and utilities for
// inferank. It defines the probability tables for heredity inference, the
// PageRank estimator settings, and report generation preferences.
//
// Values are layered: NewConfig defaults, then the YAML configuration file,
// then INFERANK_* variables from .env and the process environment, then
// CLI flags.
package config
