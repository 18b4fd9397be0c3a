package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ServerConfig represents the complete server configuration. Both
// blocks may be omitted from the file; defaults fill the gaps.
type ServerConfig struct {
	Server *ServerSettings `hcl:"server,block"`
	AI     *AISettings     `hcl:"ai,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	Seed     int64  `hcl:"seed,optional"` // 0 means derive from the clock
}

// AISettings tunes the simulated thinking delay for AI seats
type AISettings struct {
	ThinkMinMillis int `hcl:"think_min_ms,optional"`
	ThinkMaxMillis int `hcl:"think_max_ms,optional"`
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Server: &ServerSettings{
			Address:  "localhost",
			Port:     8000,
			LogLevel: "info",
		},
		AI: &AISettings{
			ThinkMinMillis: int(DefaultThinkDelay.Min / time.Millisecond),
			ThinkMaxMillis: int(DefaultThinkDelay.Max / time.Millisecond),
		},
	}
}

// LoadServerConfig loads server configuration from an HCL file. A
// missing file yields the defaults.
func LoadServerConfig(filename string) (*ServerConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultServerConfig()
	if config.Server == nil {
		config.Server = defaults.Server
	}
	if config.AI == nil {
		config.AI = defaults.AI
	}
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.AI.ThinkMinMillis == 0 {
		config.AI.ThinkMinMillis = defaults.AI.ThinkMinMillis
	}
	if config.AI.ThinkMaxMillis == 0 {
		config.AI.ThinkMaxMillis = defaults.AI.ThinkMaxMillis
	}

	return &config, nil
}

// Validate validates the server configuration
func (c *ServerConfig) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.AI.ThinkMinMillis < 0 {
		return fmt.Errorf("think_min_ms must not be negative")
	}
	if c.AI.ThinkMaxMillis < c.AI.ThinkMinMillis {
		return fmt.Errorf("think_max_ms must be >= think_min_ms")
	}
	return nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// ThinkDelay returns the configured AI thinking delay bounds
func (c *ServerConfig) ThinkDelay() ThinkDelay {
	return ThinkDelay{
		Min: time.Duration(c.AI.ThinkMinMillis) * time.Millisecond,
		Max: time.Duration(c.AI.ThinkMaxMillis) * time.Millisecond,
	}
}
