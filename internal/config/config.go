package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	SqliteDriver    = "sqlite"
	FirestoreDriver = "firestore"

	FileStoreDriver = "filestore"
	MinioDriver     = "minio"
	GCSDriver       = "gcs"
)

// SessionKeyLen is the length required by the cookie session manager, which encrypts cookies with AES-256.
const SessionKeyLen = 32

type Configuration struct {
	Port uint16 `mapstructure:"port"`
	// Debug, if true, logs to the console in a human readable format and lowers the log level to debug.
	Debug bool `mapstructure:"debug"`
	// StaticDir is the directory from which the public site (markup, stylesheets, scripts and images) is served.
	StaticDir string `mapstructure:"static_dir"`
	// DbUrl is the path to the SQLite database file. It holds the owner's account and the task queue, and the
	// documents themselves when the sqlite document store is used.
	DbUrl string `mapstructure:"db_url"`
	// SessionKey encrypts the session cookies. Must be exactly SessionKeyLen bytes long.
	SessionKey    string `mapstructure:"session_key"`
	SecureCookies bool   `mapstructure:"secure_cookies"`
	LogLevel      string `mapstructure:"log_level"`

	DocStore DocStore `mapstructure:"docstore"`
	Storage  Storage  `mapstructure:"storage"`
	Minio    Minio    `mapstructure:"minio"`
	GCS      GCS      `mapstructure:"gcs"`
}

type DocStore struct {
	// Driver is either "sqlite" or "firestore".
	Driver string `mapstructure:"driver"`
	// ProjectID is the Google Cloud project of the Firestore database.
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

type Storage struct {
	// Driver is one of "filestore", "minio" or "gcs".
	Driver string `mapstructure:"driver"`
	// FsRoot is the directory where the filestore driver keeps uploaded images.
	FsRoot string `mapstructure:"fs_root"`
	// BaseURL is the public prefix of the retrieval URLs handed out by the filestore driver.
	BaseURL string `mapstructure:"base_url"`
	// CleanupOrphans enqueues the deletion of an uploaded blob when the document that should reference it
	// could not be written.
	CleanupOrphans bool `mapstructure:"cleanup_orphans"`
}

type Minio struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

type GCS struct {
	Bucket string `mapstructure:"bucket"`
	// BaseURL overrides the default https://storage.googleapis.com/<bucket> prefix, for instance with a CDN domain.
	BaseURL         string `mapstructure:"base_url"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("debug", false)
	v.SetDefault("static_dir", "public")
	v.SetDefault("db_url", "portfolio.db")
	v.SetDefault("session_key", "")
	v.SetDefault("secure_cookies", false)
	v.SetDefault("log_level", "info")

	v.SetDefault("docstore.driver", SqliteDriver)
	v.SetDefault("docstore.project_id", "")
	v.SetDefault("docstore.credentials_file", "")

	v.SetDefault("storage.driver", FileStoreDriver)
	v.SetDefault("storage.fs_root", "uploads")
	v.SetDefault("storage.base_url", "http://localhost:8080/files")
	v.SetDefault("storage.cleanup_orphans", false)

	v.SetDefault("minio.endpoint", "")
	v.SetDefault("minio.access_key", "")
	v.SetDefault("minio.secret_key", "")
	v.SetDefault("minio.bucket", "portfolio")
	v.SetDefault("minio.use_ssl", false)

	v.SetDefault("gcs.bucket", "")
	v.SetDefault("gcs.base_url", "")
	v.SetDefault("gcs.credentials_file", "")
}

// Flags returns the command line flags understood by ReadConfig.
func Flags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("portfolio", pflag.ContinueOnError)
	flags.String("config", "", "path to a configuration file (yaml, toml or json)")
	flags.Uint16("port", 8080, "port the HTTP server listens on")
	flags.Bool("debug", false, "human readable debug logging")
	return flags
}

// ReadConfig builds the configuration from, in increasing order of precedence, the defaults, the configuration
// file, the environment (variables prefixed with PORTFOLIO_, optionally loaded from a .env file) and the flags.
func ReadConfig(flags *pflag.FlagSet) (Configuration, error) {
	var cfg Configuration
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if path, _ := flags.GetString("config"); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
			}
		}
		for _, name := range []string{"port", "debug"} {
			if f := flags.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(name, f); err != nil {
					return cfg, err
				}
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c Configuration) Validate() error {
	var errs []error
	if len(c.SessionKey) != SessionKeyLen {
		errs = append(errs, fmt.Errorf("session_key must be %d bytes long", SessionKeyLen))
	}

	switch c.DocStore.Driver {
	case SqliteDriver:
	case FirestoreDriver:
		if c.DocStore.ProjectID == "" {
			errs = append(errs, errors.New("docstore.project_id is required by the firestore driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown docstore driver %q", c.DocStore.Driver))
	}

	switch c.Storage.Driver {
	case FileStoreDriver:
		if c.Storage.FsRoot == "" || c.Storage.BaseURL == "" {
			errs = append(errs, errors.New("storage.fs_root and storage.base_url are required by the filestore driver"))
		}
	case MinioDriver:
		if c.Minio.Endpoint == "" || c.Minio.Bucket == "" {
			errs = append(errs, errors.New("minio.endpoint and minio.bucket are required by the minio driver"))
		}
	case GCSDriver:
		if c.GCS.Bucket == "" {
			errs = append(errs, errors.New("gcs.bucket is required by the gcs driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	return errors.Join(errs...)
}
