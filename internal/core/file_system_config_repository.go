package core

import (
	"fmt"

	"chartmenu/internal/cli/log"
	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the location of the YAML configuration file.
type ConfigPath string

const DefaultConfigPath ConfigPath = "~/.chartmenu.yaml"

// ConfigOverrides carries command line flags that take precedence over the file.
type ConfigOverrides struct {
	ReleaseActions bool
	FailFast       bool
}

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	Path() string
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	path        ConfigPath
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(fileService ports.FileSystem, path ConfigPath) *FileSystemConfigRepository {
	if path == "" {
		path = DefaultConfigPath
	}
	return &FileSystemConfigRepository{
		fileService: fileService,
		path:        path,
	}
}

// ProvideConfig loads the configuration and applies the command line overrides.
func ProvideConfig(configRepository ConfigRepository, overrides ConfigOverrides) (*domain.Config, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}
	merged := *config
	if overrides.ReleaseActions {
		merged.ReleaseActions = true
	}
	if overrides.FailFast {
		merged.FailFast = true
	}
	return &merged, nil
}

func (c *FileSystemConfigRepository) Path() string {
	return string(c.path)
}

// LoadConfig reads the config file. A missing file yields the defaults.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	exists, err := c.fileService.FileExists(string(c.path))
	if err != nil {
		return nil, err
	}

	config := domain.Config{}
	if exists {
		data, err := c.fileService.ReadFile(string(c.path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	} else {
		log.Logger().Debugf("no config file at %s, using defaults", c.path)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config
	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	return c.fileService.WriteFile(string(c.path), data)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(string(c.path))
}
