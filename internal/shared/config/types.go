package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig configures the embedded download store. The store is a
// single sqlite file local to the node; there is no network database.
type DatabaseConfig struct {
	Path            string `mapstructure:"path"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	// AdminPasswordHash is the bcrypt hash of the back-office password.
	AdminPasswordHash string    `mapstructure:"admin_password_hash"`
	JWT               JWTConfig `mapstructure:"jwt"`
}

type DownloadConfig struct {
	// MaxBlobSizeMB caps a single stored payload. 0 disables the cap.
	MaxBlobSizeMB int `mapstructure:"max_blob_size_mb"`
}

type CatalogConfig struct {
	// SeedDefaults loads the default plan catalog into an empty store on
	// startup so the public pricing page is never blank.
	SeedDefaults bool `mapstructure:"seed_defaults"`
}
