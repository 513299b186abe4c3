package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Mail     MailConfig     `mapstructure:"mail"     validate:"required"`
	Blob     BlobConfig     `mapstructure:"blob"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Orders   OrdersConfig   `mapstructure:"orders"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists browser origins allowed to call the API. "*" allows any.
	CORSAllowedOrigins     []string `mapstructure:"cors_allowed_origins"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// MailConfig configures the outbound SMTP transport used for newsletters.
type MailConfig struct {
	Host     string `mapstructure:"host"     validate:"required,hostname|ip"`
	Port     int    `mapstructure:"port"     validate:"required,gt=0,lt=65536"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	// From is the sender address. Falls back to Username when empty.
	From string `mapstructure:"from"`
	// ImplicitTLS dials with TLS from the first byte (SMTPS, usually port 465).
	ImplicitTLS bool `mapstructure:"implicit_tls"`
}

// BlobConfig configures the resume upload backend.
type BlobConfig struct {
	// CloudinaryURL has the form cloudinary://<api_key>:<api_secret>@<cloud_name>.
	CloudinaryURL string `mapstructure:"cloudinary_url"`
	Folder        string `mapstructure:"folder"`
}

// CacheConfig configures the optional Redis cache for the job listing.
type CacheConfig struct {
	RedisURL   string `mapstructure:"redis_url"   validate:"omitempty,url"`
	TTLSeconds int    `mapstructure:"ttl_seconds" validate:"gte=0"`
}

// OrdersConfig holds the values stamped on orders created from converted leads
// when the conversion request does not carry them.
type OrdersConfig struct {
	DefaultPackageID string `mapstructure:"default_package_id"`
	DefaultUserID    string `mapstructure:"default_user_id"`
}

// SenderAddress returns the address newsletters are sent from.
func (m MailConfig) SenderAddress() string {
	if m.From != "" {
		return m.From
	}
	return m.Username
}
