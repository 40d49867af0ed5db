package config

import "github.com/spf13/viper"

// Observes holds observability configuration.
type Observes struct {
	Sentry *Sentry
}

// Sentry sentry config struct
type Sentry struct {
	Dsn string
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: &Sentry{
			Dsn: v.GetString("observes.sentry.dsn"),
		},
	}
}
