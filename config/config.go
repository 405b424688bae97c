package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pfp3/internal/infrastructure/broker"
	"pfp3/internal/infrastructure/database"
	"pfp3/internal/infrastructure/fsstore"
	"pfp3/internal/infrastructure/minio"
	"pfp3/pkg/logger"
)

const (
	BackendFS    = "fs"
	BackendMinIO = "minio"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPServerConfig       `yaml:"http_server"`
	Storage         StorageConfig          `yaml:"storage"`
	Avatar          AvatarConfig           `yaml:"avatar"`
	FSStore         fsstore.Config         `yaml:"fs_store"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOStore      minio.StoreConfig      `yaml:"minio_store"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Users           []SeedUser             `yaml:"users"`
	Logger          logger.Config          `yaml:"logger"`
}

type HTTPServerConfig struct {
	Address string `yaml:"address"`
}

// StorageConfig selects the blob store backend: "fs" or "minio".
type StorageConfig struct {
	Backend string `yaml:"backend"`
}

// AvatarConfig is the upload policy: accepted media types and the size ceiling.
type AvatarConfig struct {
	MaxSizeInBytes    int64    `yaml:"max_size_in_bytes"`
	AllowedMediaTypes []string `yaml:"allowed_media_types"`
}

// SeedUser is a pre-provisioned directory entry.
type SeedUser struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.HTTPServer.Address == "" {
		return errors.New("http_server.address must be set")
	}

	if c.Storage.Backend != BackendFS && c.Storage.Backend != BackendMinIO {
		return fmt.Errorf("storage.backend must be %q or %q, got %q",
			BackendFS, BackendMinIO, c.Storage.Backend)
	}

	if c.Avatar.MaxSizeInBytes <= 0 {
		return errors.New("avatar.max_size_in_bytes must be positive")
	}

	if len(c.Avatar.AllowedMediaTypes) == 0 {
		return errors.New("avatar.allowed_media_types must not be empty")
	}

	return nil
}
