// Package gateway assembles and runs the MongoGate HTTP service.
package gateway

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/kart-io/mongogate/pkg/auth/jwt"
	"github.com/kart-io/mongogate/pkg/mongodb"
	loggeropts "github.com/kart-io/mongogate/pkg/options/logger"
	serveropts "github.com/kart-io/mongogate/pkg/options/server"
	"github.com/kart-io/mongogate/pkg/redis"
)

// Options aggregates the configuration of the gateway service.
type Options struct {
	Server *serveropts.Options `json:"server" mapstructure:"server"`
	Log    *loggeropts.Options `json:"log" mapstructure:"log"`
	JWT    *jwt.Options        `json:"jwt" mapstructure:"jwt"`
	Mongo  *mongodb.Options    `json:"mongo" mapstructure:"mongo"`
	Redis  *redis.Options      `json:"redis" mapstructure:"redis"`

	// ClusterTimeout bounds dialing a target cluster.
	ClusterTimeout time.Duration `json:"cluster-timeout" mapstructure:"cluster-timeout"`
}

// NewOptions creates Options with defaults.
func NewOptions() *Options {
	return &Options{
		Server:         serveropts.NewOptions(),
		Log:            loggeropts.NewOptions(),
		JWT:            jwt.NewOptions(),
		Mongo:          mongodb.NewOptions(),
		Redis:          redis.NewOptions(),
		ClusterTimeout: 10 * time.Second,
	}
}

// AddFlags registers all gateway flags.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	o.Server.AddFlags(fs)
	o.Log.AddFlags(fs)
	o.JWT.AddFlags(fs)
	o.Mongo.AddFlags(fs)
	o.Redis.AddFlags(fs)
	fs.DurationVar(&o.ClusterTimeout, "cluster-timeout", o.ClusterTimeout, "Timeout for dialing target clusters")
}

// Complete fills in environment-derived values.
func (o *Options) Complete() error {
	for _, c := range []interface{ Complete() error }{o.Server, o.Log, o.JWT, o.Mongo, o.Redis} {
		if err := c.Complete(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the final configuration.
func (o *Options) Validate() error {
	for _, v := range []interface{ Validate() error }{o.Server, o.Log, o.JWT, o.Mongo, o.Redis} {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}
