package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the application configuration
type Config struct {
	LLM      LLMConfig      `yaml:"llm"`
	Seeds    SeedsConfig    `yaml:"seeds"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// LLMConfig represents completion-service configuration
type LLMConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	// APIKeyEnv names the environment variable holding the credential.
	// APIKey is the resolved value; setting it in the file works but keeping
	// credentials out of config files is the point of APIKeyEnv.
	APIKey            string `yaml:"api_key"`
	APIKeyEnv         string `yaml:"api_key_env"`
	BaseURL           string `yaml:"base_url"`
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	MaxTokens         int    `yaml:"max_tokens"`
	RetryCount        int    `yaml:"retry_count"`
	RetryDelaySeconds int    `yaml:"retry_delay_seconds"`
}

// SeedsConfig locates the static seed corpus and the response log
type SeedsConfig struct {
	ExampleIdeas          string `yaml:"example_ideas"`
	DetailedIdeas         string `yaml:"detailed_ideas"`
	ProjectListing        string `yaml:"project_listing"`
	Playlist              string `yaml:"playlist"`
	ScaffoldingPrinciples string `yaml:"scaffolding_principles"`
	ResponseLog           string `yaml:"response_log"`
}

// PipelineConfig represents orchestration configuration
type PipelineConfig struct {
	IdeaCount        int    `yaml:"idea_count"`
	OutputDir        string `yaml:"output_dir"`
	CompareWithLog   bool   `yaml:"compare_with_log"`
	SaveToLog        bool   `yaml:"save_to_log"`
	CallDelaySeconds int    `yaml:"call_delay_seconds"`
	Review           bool   `yaml:"review"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()

	if config.LLM.APIKey == "" && config.LLM.APIKeyEnv != "" {
		config.LLM.APIKey = os.Getenv(config.LLM.APIKeyEnv)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "gemini"
	}
	if c.LLM.APIKeyEnv == "" && c.LLM.APIKey == "" {
		c.LLM.APIKeyEnv = "GEMINI_API_KEY"
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 120
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 8192
	}
	if c.LLM.RetryCount == 0 {
		c.LLM.RetryCount = 3
	}
	if c.LLM.RetryDelaySeconds == 0 {
		c.LLM.RetryDelaySeconds = 5
	}
	if c.Pipeline.IdeaCount == 0 {
		c.Pipeline.IdeaCount = 10
	}
	if c.Pipeline.OutputDir == "" {
		c.Pipeline.OutputDir = "./projects"
	}
	if c.Pipeline.CallDelaySeconds == 0 {
		c.Pipeline.CallDelaySeconds = 3
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("llm provider %q is not supported (use gemini or openai)", c.LLM.Provider)
	}

	if c.LLM.Model == "" {
		return fmt.Errorf("llm model is required")
	}

	if c.LLM.APIKey == "" {
		if c.LLM.APIKeyEnv != "" {
			return fmt.Errorf("API key is required: set %s or llm.api_key", c.LLM.APIKeyEnv)
		}
		return fmt.Errorf("API key is required")
	}

	if c.Seeds.ExampleIdeas == "" {
		return fmt.Errorf("seeds.example_ideas path is required")
	}

	if c.Seeds.ResponseLog == "" && (c.Pipeline.CompareWithLog || c.Pipeline.SaveToLog) {
		return fmt.Errorf("seeds.response_log path is required when the log is in use")
	}

	if c.Pipeline.IdeaCount < 1 {
		return fmt.Errorf("pipeline.idea_count must be at least 1")
	}

	return nil
}
