package minecraft

import (
	"os"
	"path/filepath"
	"runtime"
	"time"
)

type Config struct {
	WorkingDir     string   `json:"working_dir,omitempty" validate:"omitempty,dir"`
	JavaHome       string   `json:"java_home,omitempty"`
	JavaParameters []string `json:"java_parameters,omitempty"`
	ServerJarPath  string   `json:"server_jar,omitempty" validate:"required"`
	Parameters     []string `json:"parameters,omitempty"`
	StopTimeout    uint     `json:"stop_timeout,omitempty"`
}

func NewConfig(baseDir string) *Config {
	c := &Config{WorkingDir: baseDir}
	c.ConfigureDefaults()
	return c
}

func (c *Config) ConfigureDefaults() {
	if c.JavaHome == "" {
		c.JavaHome = os.Getenv("JAVA_HOME")
	}
	if c.JavaParameters == nil {
		c.JavaParameters = []string{
			"-XX:+UseG1GC",
			"-XX:MaxGCPauseMillis=50",
		}
	}
	if c.ServerJarPath == "" {
		c.ServerJarPath = "server.jar"
	}
	if c.Parameters == nil {
		c.Parameters = []string{"nogui"}
	}
	if c.StopTimeout == 0 {
		c.StopTimeout = 30
	}
}

func (c *Config) SetBaseDir(baseDir string) {
	c.WorkingDir = resolvePath(baseDir, c.WorkingDir)
	c.ServerJarPath = resolvePath(c.WorkingDir, c.ServerJarPath)
	if c.JavaHome != "" {
		c.JavaHome = resolvePath(c.WorkingDir, c.JavaHome)
	}
}

// StopDelay is how long the server may take to stop before being killed.
func (c Config) StopDelay() time.Duration {
	return time.Duration(c.StopTimeout) * time.Second
}

func (c Config) Command() string {
	java := "java"
	if runtime.GOOS == "windows" {
		java = "java.exe"
	}
	if c.JavaHome == "" {
		return java
	}
	return filepath.Join(c.JavaHome, "bin", java)
}

func (c Config) CmdLine() []string {
	cmdLine := append([]string{c.Command()}, c.JavaParameters...)
	cmdLine = append(cmdLine, "-jar", c.ServerJarPath)
	return append(cmdLine, c.Parameters...)
}

func (c Config) Env() []string {
	if c.JavaHome == "" {
		return os.Environ()
	}
	return append(os.Environ(), "JAVA_HOME="+c.JavaHome)
}

func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
