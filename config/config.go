// Package config aggregates the configuration of every service component.
//
// Configuration is loaded from ./config/${ENVIRONMENT}.yaml by cfgloader,
// with environment variable expansion, defaults and validation applied.
package config

import (
	"github.com/rise-and-shine/fileserve/auth"
	"github.com/rise-and-shine/fileserve/filestore/localfs"
	"github.com/rise-and-shine/fileserve/http/handler"
	"github.com/rise-and-shine/fileserve/http/server"
	"github.com/rise-and-shine/fileserve/http/server/middleware"
	"github.com/rise-and-shine/fileserve/observability/logger"
	"github.com/rise-and-shine/fileserve/observability/tracing"
)

// Config is the root configuration of the service.
type Config struct {
	ServiceName    string `yaml:"service_name"    validate:"required" default:"fileserve"`
	ServiceVersion string `yaml:"service_version" validate:"required" default:"0.1.0"`

	Server    server.Config              `yaml:"server"`
	Storage   localfs.Config             `yaml:"storage"`
	Handler   handler.Config             `yaml:"handler"`
	Auth      auth.Config                `yaml:"auth"`
	RateLimit middleware.RateLimitConfig `yaml:"rate_limit"`
	Logger    logger.Config              `yaml:"logger"`
	Tracing   tracing.Config             `yaml:"tracing"`
}
