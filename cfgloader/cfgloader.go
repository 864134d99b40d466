// Package cfgloader provides a simple way to load and validate configuration
// at the start of an application.
package cfgloader

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvProduction = "production"
	EnvStaging    = "staging"
	EnvDev        = "dev"
	EnvLocal      = "local"
	EnvTest       = "test"
)

// MustLoad loads and validates configuration from a YAML file based on the
// ENVIRONMENT variable. The files must be named ${ENVIRONMENT}.yaml and
// located in the config directory at the root of the project.
//
// The configuration struct should use `yaml` struct tags to map fields to
// the YAML file structure. Default values can be set with the `default`
// struct tag (applied before validation when the YAML file leaves the field
// unset), and validations use the go-playground/validator package.
//
// Environment variable references (${VAR}) inside the YAML file are
// expanded before unmarshaling; a .env file is loaded first when present.
//
// Any failure terminates the process: configuration errors are never
// recoverable at runtime.
func MustLoad[T any]() T {
	var config T

	ensureNotPointer(config)

	_ = godotenv.Load()

	env := defineEnvironment()

	data := readConfigFile(fmt.Sprintf("./config/%s.yaml", env))
	data = []byte(os.ExpandEnv(string(data)))

	if err := yaml.Unmarshal(data, &config); err != nil {
		fatalf("failed to unmarshal %s config file: %v", env, err)
	}

	if err := defaults.Set(&config); err != nil {
		fatalf("failed to set default values for config: %v", err)
	}

	validateConfig(&config, env)

	printConfig(&config, env)

	return config
}

func ensureNotPointer(config any) {
	if reflect.ValueOf(config).Kind() == reflect.Ptr {
		fatalf("arg config must not be a pointer")
	}
}

func defineEnvironment() string {
	env := os.Getenv("ENVIRONMENT")
	if !slices.Contains([]string{EnvProduction, EnvStaging, EnvDev, EnvLocal, EnvTest}, env) {
		fatalf("ENVIRONMENT env variable is not set or invalid. Choices are: production, staging, dev, local, test")
	}
	return env
}

func readConfigFile(path string) []byte {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		fatalf("config file not found in the path %s - make sure the yaml file exists for each environment", path)
	}
	if err != nil {
		fatalf("failed to read config file %s: %v", path, err)
	}
	return data
}

func validateConfig(config any, env string) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(config)

	failedFields := make([]string, 0)
	if errs, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint // type assertion for validator errors
		for _, fieldErr := range errs {
			tagErr := fieldErr.Tag()
			if fieldErr.Param() != "" {
				tagErr += fmt.Sprintf("=%s", fieldErr.Param())
			}
			failedFields = append(failedFields, fmt.Sprintf("%s: %s", fieldErr.Namespace(), tagErr))
		}
	}

	if len(failedFields) > 0 {
		fatalf("invalid fields in %s config -> %s", env, strings.Join(failedFields, ",  "))
	}
}

func fatalf(format string, args ...any) {
	slog.Error("[cfgloader]: " + fmt.Sprintf(format, args...))
	os.Exit(1)
}
