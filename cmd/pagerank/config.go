package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vertex-lab/pagerank/pkg/utils/logger"
)

// The configuration parameters of the driver.
type Config struct {
	Damping      float64
	NumSamples   int
	RedisAddress string // empty means the corpus cache is disabled
	Log          *logger.Aggregate
	LogWriter    io.Writer
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		Damping:    0.85,
		NumSamples: 10000,
		LogWriter:  os.Stdout,
	}
}

// LoadConfig() reads the variables from the environment (and from a .env
// file, if present) and parses them into a config struct.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	var config = NewConfig()
	var err error

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "DAMPING":
			config.Damping, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "NUM_SAMPLES":
			config.NumSamples, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "REDIS_ADDRESS":
			config.RedisAddress = val

		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stdout
			if strings.HasSuffix(val, ".log") {
				config.LogWriter, err = os.OpenFile(val, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
			}
		}
	}

	config.Log = logger.New(config.LogWriter)
	return config, nil
}
