package auth

import "time"

// Config holds the configuration for the authentication service.
//
// Users are declared statically in the config file; passwords are stored as
// bcrypt hashes, never in plain text.
type Config struct {
	Disable bool `yaml:"disable" validate:"omitempty"`

	JWTSecret       string        `yaml:"jwt_secret"        validate:"required_if=Disable false" mask:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  validate:"required"                  default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" validate:"required"                  default:"720h"`

	Users []UserConfig `yaml:"users" validate:"omitempty,dive"`
}

// UserConfig declares a single user allowed to authenticate.
type UserConfig struct {
	Username     string `yaml:"username"      validate:"required,alphanum"`
	PasswordHash string `yaml:"password_hash" validate:"required"          mask:"true"`
}
