// Package server provides HTTP server configuration options.
package server

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Options defines configuration options for the HTTP server.
type Options struct {
	// Addr is the listen address (host:port).
	Addr string `json:"addr" mapstructure:"addr"`

	// Mode is the gin mode (debug|release|test).
	Mode string `json:"mode" mapstructure:"mode"`

	// ReadTimeout bounds reading the full request.
	ReadTimeout time.Duration `json:"read-timeout" mapstructure:"read-timeout"`

	// WriteTimeout bounds writing the full response.
	WriteTimeout time.Duration `json:"write-timeout" mapstructure:"write-timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `json:"shutdown-timeout" mapstructure:"shutdown-timeout"`

	// CORSAllowOrigins lists allowed CORS origins. "*" allows all.
	CORSAllowOrigins []string `json:"cors-allow-origins" mapstructure:"cors-allow-origins"`
}

// NewOptions creates new Options with defaults.
func NewOptions() *Options {
	return &Options{
		Addr:             ":8080",
		Mode:             "release",
		ReadTimeout:      30 * time.Second,
		WriteTimeout:     60 * time.Second,
		ShutdownTimeout:  10 * time.Second,
		CORSAllowOrigins: []string{"*"},
	}
}

// AddFlags adds flags for server options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Addr, "server.addr", o.Addr, "HTTP listen address")
	fs.StringVar(&o.Mode, "server.mode", o.Mode, "Server mode (debug|release|test)")
	fs.DurationVar(&o.ReadTimeout, "server.read-timeout", o.ReadTimeout, "HTTP read timeout")
	fs.DurationVar(&o.WriteTimeout, "server.write-timeout", o.WriteTimeout, "HTTP write timeout")
	fs.DurationVar(&o.ShutdownTimeout, "server.shutdown-timeout", o.ShutdownTimeout, "Graceful shutdown timeout")
	fs.StringSliceVar(&o.CORSAllowOrigins, "server.cors-allow-origins", o.CORSAllowOrigins, "Allowed CORS origins")
}

// Complete fills in any unset fields.
func (o *Options) Complete() error {
	return nil
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.Addr == "" {
		return fmt.Errorf("server addr is required")
	}
	switch o.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid server mode: %s", o.Mode)
	}
	return nil
}
