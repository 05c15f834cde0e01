package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvPrefix prefixes every environment variable read by inferank.
	EnvPrefix = "INFERANK_"

	// DefaultEnvFile is the dotenv file read from the current directory.
	DefaultEnvFile = ".env"
)

// LoadEnv collects INFERANK_* variables from the dotenv file at path and
// the process environment. The process environment wins. A missing dotenv
// file is not an error.
//
// Design decision: We read the dotenv file with godotenv.Read instead of
// godotenv.Load so that the process environment is never mutated and tests
// stay parallel-safe.
func LoadEnv(path string) (map[string]string, error) {
	vars := make(map[string]string)

	if path != "" {
		file, err := godotenv.Read(path)
		switch {
		case err == nil:
			for k, v := range file {
				if strings.HasPrefix(k, EnvPrefix) {
					vars[k] = v
				}
			}
		case errors.Is(err, fs.ErrNotExist):
			// No dotenv file.
		default:
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return vars, nil
}

// ApplyEnv copies recognized INFERANK_* variables onto the configuration.
// Unknown variables are ignored.
func (c *Config) ApplyEnv(vars map[string]string) error {
	for key, value := range vars {
		name := strings.TrimPrefix(key, EnvPrefix)
		value = strings.TrimSpace(value)

		var err error
		switch name {
		case "DAMPING":
			c.Damping, err = strconv.ParseFloat(value, 64)
		case "SAMPLES":
			c.Samples, err = strconv.Atoi(value)
		case "THRESHOLD":
			c.Threshold, err = strconv.ParseFloat(value, 64)
		case "MAX_ITERATIONS":
			c.MaxIterations, err = strconv.Atoi(value)
		case "SEED":
			c.Seed, err = strconv.ParseUint(value, 10, 64)
		case "CONCURRENCY":
			c.Concurrency, err = strconv.Atoi(value)
		case "BATCH":
			c.BatchSize, err = strconv.Atoi(value)
		case "MAX_PEOPLE":
			c.MaxPeople, err = strconv.Atoi(value)
		case "MUTATION":
			c.Probabilities.Mutation, err = strconv.ParseFloat(value, 64)
		case "VERBOSE":
			c.Verbose, err = strconv.ParseBool(value)
		case "LOG_JSON":
			c.LogJSON, err = strconv.ParseBool(value)
		default:
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, key, value)
		}
	}
	return nil
}
