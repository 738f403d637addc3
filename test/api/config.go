/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/unikorn-cloud/reddit/pkg/client"
	"github.com/unikorn-cloud/reddit/pkg/constants"
)

var (
	// ErrMissingConfiguration is raised when required settings are absent.
	ErrMissingConfiguration = errors.New("missing required configuration")
)

type TestConfig struct {
	BaseURL         string
	AuthToken       string
	Subreddit       string
	RequestTimeout  time.Duration
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         getStringWithDefault("REDDIT_BASE_URL", constants.DefaultBaseURL),
		AuthToken:       os.Getenv("REDDIT_AUTH_TOKEN"),
		Subreddit:       os.Getenv("REDDIT_TEST_SUBREDDIT"),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

// ClientOptions returns options for a client configured against the test
// environment.
func (c *TestConfig) ClientOptions() *client.Options {
	return &client.Options{
		BaseURL:      c.BaseURL,
		Token:        c.AuthToken,
		Timeout:      c.RequestTimeout,
		LogRequests:  c.LogRequests,
		LogResponses: c.LogResponses,
	}
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// Not an error in CI where the environment is set directly.
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"REDDIT_AUTH_TOKEN":     config.AuthToken,
		"REDDIT_TEST_SUBREDDIT": config.Subreddit,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return fmt.Errorf("%w: %s, set these environment variables or add them to a .env file", ErrMissingConfiguration, strings.Join(missing, ", "))
	}

	return nil
}
