package jwt

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the JWT authenticator.
type Options struct {
	// Key is the HMAC signing key. Minimum 32 bytes.
	// Use the MONGOGATE_JWT_KEY environment variable in production.
	Key string `json:"-" mapstructure:"key"`

	// SigningMethod is the HMAC algorithm (HS256, HS384, HS512).
	SigningMethod string `json:"signing-method" mapstructure:"signing-method"`

	// Issuer is the token issuer claim.
	Issuer string `json:"issuer" mapstructure:"issuer"`

	// Expired is the token lifetime.
	Expired time.Duration `json:"expired" mapstructure:"expired"`

	// MaxRefresh is the window after issue during which refresh is allowed.
	MaxRefresh time.Duration `json:"max-refresh" mapstructure:"max-refresh"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		SigningMethod: "HS256",
		Issuer:        "mongogate",
		Expired:       2 * time.Hour,
		MaxRefresh:    24 * time.Hour,
	}
}

// AddFlags adds flags for JWT options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Key, "jwt.key", o.Key, "JWT signing key (prefer MONGOGATE_JWT_KEY env var)")
	fs.StringVar(&o.SigningMethod, "jwt.signing-method", o.SigningMethod, "JWT signing method (HS256|HS384|HS512)")
	fs.StringVar(&o.Issuer, "jwt.issuer", o.Issuer, "JWT issuer claim")
	fs.DurationVar(&o.Expired, "jwt.expired", o.Expired, "JWT token lifetime")
	fs.DurationVar(&o.MaxRefresh, "jwt.max-refresh", o.MaxRefresh, "Maximum window for token refresh")
}

// Complete fills in fields that may come from the environment.
func (o *Options) Complete() error {
	if o.Key == "" {
		o.Key = os.Getenv("MONGOGATE_JWT_KEY")
	}
	return nil
}

// Validate checks that the options are usable.
func (o *Options) Validate() error {
	switch o.SigningMethod {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("unsupported signing method: %s", o.SigningMethod)
	}
	if len(o.Key) < 32 {
		return fmt.Errorf("jwt key must be at least 32 bytes, got %d", len(o.Key))
	}
	if o.Expired <= 0 {
		return fmt.Errorf("jwt expired must be positive")
	}
	return nil
}
