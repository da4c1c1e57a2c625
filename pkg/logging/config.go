package logging

import (
	"github.com/apex/log"
	"github.com/apex/log/handlers/multi"
	"github.com/thejerf/suture/v4"
)

type (
	Config struct {
		Console ConsoleConfig `json:"console"`
		File    *FileConfig   `json:"file,omitempty"`
	}

	factory interface {
		CreateLogging() (log.Handler, log.Level, suture.Service)
	}
)

var _ factory = (*Config)(nil)

func NewConfig(baseDir string) *Config {
	return &Config{
		Console: ConsoleConfig(log.InfoLevel),
		File:    NewFileConfig(baseDir),
	}
}

// CreateLogging combines the console and file handlers. The returned service,
// if any, must be run for the file handler to write anything.
func (c *Config) CreateLogging() (log.Handler, log.Level, suture.Service) {
	handler, minLevel, svc := c.Console.CreateLogging()

	if c.File != nil && !c.File.Disabled {
		fileHandler, fileLevel, fileSvc := c.File.CreateLogging()
		handler = multi.New(handler, fileHandler)
		if fileLevel < minLevel {
			minLevel = fileLevel
		}
		if svc == nil {
			svc = fileSvc
		} else {
			spv := suture.NewSimple("logger")
			spv.Add(svc)
			spv.Add(fileSvc)
			svc = spv
		}
	}

	return handler, minLevel, svc
}

// Apply installs the handlers as the default apex/log logger.
func (c *Config) Apply() suture.Service {
	handler, level, svc := c.CreateLogging()
	log.SetHandler(handler)
	log.SetLevel(level)
	return svc
}
