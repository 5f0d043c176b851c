package mongodb

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

// redactedPassword is the placeholder used when serializing passwords.
const redactedPassword = "[REDACTED]"

// Options defines configuration options for MongoDB.
type Options struct {
	// Connection
	URI      string `json:"uri" mapstructure:"uri"`           // MongoDB URI (mongodb://...)
	Host     string `json:"host" mapstructure:"host"`         // Host (if not using URI)
	Port     int    `json:"port" mapstructure:"port"`         // Port (default 27017)
	Username string `json:"username" mapstructure:"username"` // Username
	Password string `json:"-" mapstructure:"password"`        // Password (use env var)
	Database string `json:"database" mapstructure:"database"` // Database name

	// Connection Pool
	MaxPoolSize uint64        `json:"max-pool-size" mapstructure:"max-pool-size"`
	MinPoolSize uint64        `json:"min-pool-size" mapstructure:"min-pool-size"`
	MaxIdleTime time.Duration `json:"max-idle-time" mapstructure:"max-idle-time"`

	// Timeouts
	ConnectTimeout         time.Duration `json:"connect-timeout" mapstructure:"connect-timeout"`
	SocketTimeout          time.Duration `json:"socket-timeout" mapstructure:"socket-timeout"`
	ServerSelectionTimeout time.Duration `json:"server-selection-timeout" mapstructure:"server-selection-timeout"`

	// Other
	ReplicaSet string `json:"replica-set" mapstructure:"replica-set"`
	AuthSource string `json:"auth-source" mapstructure:"auth-source"`
	Direct     bool   `json:"direct" mapstructure:"direct"`
}

// NewOptions creates a new Options object with default values.
func NewOptions() *Options {
	return &Options{
		Host:                   "127.0.0.1",
		Port:                   27017,
		MaxPoolSize:            100,
		MinPoolSize:            10,
		MaxIdleTime:            10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		SocketTimeout:          30 * time.Second,
		ServerSelectionTimeout: 30 * time.Second,
		AuthSource:             "admin",
	}
}

// String returns a string representation with the password redacted.
// Safe for logging and debugging.
func (o *Options) String() string {
	password := redactedPassword
	if o.Password == "" {
		password = ""
	}
	return fmt.Sprintf("MongoDB{host=%s, port=%d, user=%s, password=%s, database=%s}",
		o.Host, o.Port, o.Username, password, o.Database)
}

// AddFlags adds flags for MongoDB options to the specified FlagSet.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.URI, "mongo.uri", o.URI, "MongoDB URI (overrides host/port)")
	fs.StringVar(&o.Host, "mongo.host", o.Host, "MongoDB host")
	fs.IntVar(&o.Port, "mongo.port", o.Port, "MongoDB port")
	fs.StringVar(&o.Username, "mongo.username", o.Username, "MongoDB username")
	fs.StringVar(&o.Database, "mongo.database", o.Database, "MongoDB database name")
	fs.Uint64Var(&o.MaxPoolSize, "mongo.max-pool-size", o.MaxPoolSize, "Maximum connection pool size")
	fs.Uint64Var(&o.MinPoolSize, "mongo.min-pool-size", o.MinPoolSize, "Minimum connection pool size")
	fs.DurationVar(&o.ConnectTimeout, "mongo.connect-timeout", o.ConnectTimeout, "Connection timeout")
	fs.DurationVar(&o.ServerSelectionTimeout, "mongo.server-selection-timeout", o.ServerSelectionTimeout, "Server selection timeout")
	fs.StringVar(&o.ReplicaSet, "mongo.replica-set", o.ReplicaSet, "Replica set name")
	fs.StringVar(&o.AuthSource, "mongo.auth-source", o.AuthSource, "Authentication source database")
	fs.BoolVar(&o.Direct, "mongo.direct", o.Direct, "Use direct connection")
}

// Complete fills in fields that may come from the environment.
// The password is never accepted via CLI flag.
func (o *Options) Complete() error {
	if o.Password == "" {
		o.Password = os.Getenv("MONGOGATE_MONGO_PASSWORD")
	}
	return nil
}

// Validate checks if the options are valid.
func (o *Options) Validate() error {
	if o.URI != "" {
		return nil
	}
	if o.Host == "" {
		return fmt.Errorf("mongo host is required when URI is not provided")
	}
	if o.Port <= 0 || o.Port > 65535 {
		return fmt.Errorf("mongo port must be between 1 and 65535")
	}
	return nil
}
