package config

import (
	"time"

	"github.com/spf13/viper"
)

// Auth holds authentication configuration.
type Auth struct {
	JWT *JWT
}

// JWT holds token signing configuration.
type JWT struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func getAuthConfig(v *viper.Viper) *Auth {
	accessTTL := v.GetDuration("auth.jwt.access_ttl")
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := v.GetDuration("auth.jwt.refresh_ttl")
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	return &Auth{
		JWT: &JWT{
			Secret:     v.GetString("auth.jwt.secret"),
			AccessTTL:  accessTTL,
			RefreshTTL: refreshTTL,
		},
	}
}
