package opls

import "time"

// Config carries everything the gateway needs to reach the OPLS backend.
// RefreshSkewSeconds and BookingWindowMinutes are deliberately configurable:
// the 60-second and 30-minute defaults come from the original client and have
// no documented rationale.
type Config struct {
	BackendUrl           string `env:"OPLS_BACKEND_URL" default:"http://localhost:8080"`
	ClientId             string `env:"OPLS_CLIENT_ID" required:"true"`
	ClientSecret         string `env:"OPLS_CLIENT_SECRET" required:"true"`
	RefreshSkewSeconds   int    `env:"OPLS_REFRESH_SKEW_SECONDS" default:"60"`
	BookingWindowMinutes int    `env:"OPLS_BOOKING_WINDOW_MINUTES" default:"30"`
}

func (c Config) RefreshSkew() time.Duration {
	return time.Duration(c.RefreshSkewSeconds) * time.Second
}

func (c Config) BookingWindow() time.Duration {
	return time.Duration(c.BookingWindowMinutes) * time.Minute
}
