package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Adirelle/efadmintag/pkg/admintag"
	"github.com/Adirelle/efadmintag/pkg/discord"
	"github.com/Adirelle/efadmintag/pkg/logging"
	"github.com/Adirelle/efadmintag/pkg/minecraft"
	"github.com/go-playground/validator/v10"
)

const (
	ConfigFilename          = "efadmintag.json"
	DefaultDatabaseFilename = "permissions.db"
)

type (
	Config struct {
		Path        string             `json:"-"`
		Logging     *logging.Config    `json:"logging" validate:"required"`
		Minecraft   *minecraft.Config  `json:"minecraft" validate:"required"`
		AdminTag    *admintag.Config   `json:"admintag" validate:"required"`
		Permissions *PermissionsConfig `json:"permissions" validate:"required"`
		Discord     *discord.Config    `json:"discord,omitempty" validate:"omitempty"`
	}

	PermissionsConfig struct {
		Database string `json:"database" validate:"required"`
	}
)

func ConfigSearchPath() []string {
	paths := os.Args[1:]
	workDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, workDir)
	}
	return append(paths, filepath.Dir(os.Args[0]))
}

func FindConfigFile(paths []string) string {
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			continue
		}
		if stat.IsDir() {
			path = filepath.Join(path, ConfigFilename)
			_, err = os.Stat(path)
		}
		if err == nil {
			return path
		}
	}
	if len(paths) > 0 {
		if stat, err := os.Stat(paths[0]); err == nil && stat.IsDir() {
			return filepath.Join(paths[0], ConfigFilename)
		}
		return paths[0]
	}
	return ConfigFilename
}

// LoadConfig reads the configuration file, writing one with default values if
// it does not exist. Relative paths are resolved from the directory of the file.
func LoadConfig(path string) (c *Config, err error) {
	c = &Config{
		Path:        path,
		Logging:     logging.NewConfig(""),
		Minecraft:   minecraft.NewConfig(""),
		AdminTag:    admintag.NewConfig(),
		Permissions: &PermissionsConfig{Database: DefaultDatabaseFilename},
	}

	err = c.Read()
	if os.IsNotExist(err) {
		err = c.Write()
	}
	if err != nil {
		return
	}

	c.SetBaseDir(filepath.Dir(path))
	if err = validator.New().Struct(c); err == nil {
		err = c.AdminTag.Validate()
	}

	return
}

func (c *Config) SetBaseDir(baseDir string) {
	c.Minecraft.SetBaseDir(baseDir)
	if c.Logging.File != nil {
		c.Logging.File.SetBaseDir(baseDir)
	}
	if !filepath.IsAbs(c.Permissions.Database) {
		c.Permissions.Database = filepath.Join(baseDir, c.Permissions.Database)
	}
	if c.AdminTag.MessagesFile != "" && !filepath.IsAbs(c.AdminTag.MessagesFile) {
		c.AdminTag.MessagesFile = filepath.Join(baseDir, c.AdminTag.MessagesFile)
	}
}

func (c *Config) Read() error {
	content, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}
	return json.Unmarshal(content, c)
}

func (c *Config) Write() error {
	content, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path, content, os.FileMode(0o644))
}
