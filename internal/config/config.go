package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names accepted in a backend block.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Workspace WorkspaceConfig          `yaml:"workspace"`
	Backends  map[string]BackendConfig `yaml:"backends"`
	Routing   RoutingConfig            `yaml:"routing"`
	Pipeline  PipelineConfig           `yaml:"pipeline"`
	Report    ReportConfig             `yaml:"report"`
	Logging   LoggingConfig            `yaml:"logging"`
	Watch     WatchConfig              `yaml:"watch"`
	Schedule  ScheduleConfig           `yaml:"schedule"`
}

// WorkspaceConfig holds the artifact partitions. Transcripts is the raw
// input directory; the rest are produced by the pipeline.
type WorkspaceConfig struct {
	Transcripts string `yaml:"transcripts"`
	Processed   string `yaml:"processed"`
	Daily       string `yaml:"daily"`
	Master      string `yaml:"master"`
	Reports     string `yaml:"reports"`
	Prompts     string `yaml:"prompts"`
}

// BackendConfig binds one named text-generation backend. The credential is
// read from the environment variable named by APIKeyEnv, never from the
// config file itself.
type BackendConfig struct {
	Provider  string `yaml:"provider"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
}

// RoutingConfig selects which backend serves each pipeline stage. Stages
// left empty fall back to Default.
type RoutingConfig struct {
	Default  string `yaml:"default"`
	Daily    string `yaml:"daily"`
	Compress string `yaml:"compress"`
	Master   string `yaml:"master"`
	Opening  string `yaml:"opening"`
	Closing  string `yaml:"closing"`
}

type PipelineConfig struct {
	ChunkMaxLength int      `yaml:"chunk_max_length"`
	ChunkOverlap   int      `yaml:"chunk_overlap"`
	MaxConcurrent  int      `yaml:"max_concurrent"`
	CallTimeout    Duration `yaml:"call_timeout"`
}

type ReportConfig struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type WatchConfig struct {
	Debounce Duration `yaml:"debounce"`
}

type ScheduleConfig struct {
	Cron string `yaml:"cron"`
}

// Duration accepts YAML strings like "90s" or "5m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load reads, parses and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Workspace.Transcripts == "" {
		return fmt.Errorf("workspace.transcripts is required")
	}
	if len(c.Backends) == 0 {
		return fmt.Errorf("at least one backend is required")
	}

	for name, b := range c.Backends {
		if b.Provider != ProviderOpenAI && b.Provider != ProviderGemini {
			return fmt.Errorf("backend %q: unknown provider %q", name, b.Provider)
		}
		if b.Model == "" {
			return fmt.Errorf("backend %q: model is required", name)
		}
		if b.APIKeyEnv == "" {
			return fmt.Errorf("backend %q: api_key_env is required", name)
		}
		if b.Provider == ProviderGemini && b.BaseURL != "" {
			return fmt.Errorf("backend %q: base_url is only supported for openai-compatible backends", name)
		}
	}

	if c.Routing.Default == "" && len(c.Backends) == 1 {
		for name := range c.Backends {
			c.Routing.Default = name
		}
	}
	if c.Routing.Default == "" {
		return fmt.Errorf("routing.default is required when multiple backends are configured")
	}

	if c.Routing.Daily == "" {
		c.Routing.Daily = c.Routing.Default
	}
	if c.Routing.Compress == "" {
		c.Routing.Compress = c.Routing.Default
	}
	if c.Routing.Master == "" {
		c.Routing.Master = c.Routing.Default
	}
	if c.Routing.Opening == "" {
		c.Routing.Opening = c.Routing.Default
	}
	if c.Routing.Closing == "" {
		c.Routing.Closing = c.Routing.Default
	}

	for stage, backend := range map[string]string{
		"default":  c.Routing.Default,
		"daily":    c.Routing.Daily,
		"compress": c.Routing.Compress,
		"master":   c.Routing.Master,
		"opening":  c.Routing.Opening,
		"closing":  c.Routing.Closing,
	} {
		if _, ok := c.Backends[backend]; !ok {
			return fmt.Errorf("routing.%s: backend %q is not configured", stage, backend)
		}
	}

	if c.Pipeline.ChunkMaxLength < 0 {
		return fmt.Errorf("pipeline.chunk_max_length must not be negative")
	}
	if c.Pipeline.ChunkOverlap < 0 {
		return fmt.Errorf("pipeline.chunk_overlap must not be negative")
	}

	if c.Workspace.Processed == "" {
		c.Workspace.Processed = "data/processed"
	}
	if c.Workspace.Daily == "" {
		c.Workspace.Daily = "data/summaries_daily"
	}
	if c.Workspace.Master == "" {
		c.Workspace.Master = "data/summaries_master"
	}
	if c.Workspace.Reports == "" {
		c.Workspace.Reports = "data/reports"
	}
	if c.Workspace.Prompts == "" {
		c.Workspace.Prompts = "data/prompts"
	}
	if c.Pipeline.ChunkMaxLength == 0 {
		c.Pipeline.ChunkMaxLength = 15000
	}
	if c.Pipeline.ChunkOverlap == 0 {
		c.Pipeline.ChunkOverlap = 800
	}
	if c.Pipeline.MaxConcurrent == 0 {
		c.Pipeline.MaxConcurrent = 2
	}
	if c.Pipeline.CallTimeout == 0 {
		c.Pipeline.CallTimeout = Duration(5 * time.Minute)
	}
	if c.Report.Title == "" {
		c.Report.Title = "Weekly Engagement Summary"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = Duration(2 * time.Second)
	}

	return nil
}
