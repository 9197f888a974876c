package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone    = "Local"
	defaultTemperature = 0.2

	configPathEnv     = "WAHALA_CONFIG"
	openRouterKeyEnv  = "OPENROUTER_API_KEY"
	oracleModelEnv    = "WAHALA_ORACLE_MODEL"
	oracleProviderEnv = "WAHALA_ORACLE_PROVIDER"
	geminiKeyEnv      = "GEMINI_API_KEY"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
	logLevelEnv       = "WAHALA_LOG_LEVEL"
	dataDirEnv        = "WAHALA_DATA_DIR"
)

// Oracle providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Storage drivers.
const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Oracle        OracleConfig       `yaml:"oracle"`
	Gemini        GeminiConfig       `yaml:"gemini"`
	Storage       StorageConfig      `yaml:"storage"`
	Fetch         FetchConfig        `yaml:"fetch"`
	Analysis      AnalysisConfig     `yaml:"analysis"`
	Sites         []SiteConfig       `yaml:"sites"`
	Categories    []CategoryConfig   `yaml:"categories"`
	Memes         map[int][]string   `yaml:"memes"`
	Notifications NotificationConfig `yaml:"notifications"`
}

// LoggingConfig sets the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// OracleConfig describes the OpenAI-compatible chat endpoint used for scoring.
type OracleConfig struct {
	Provider     string        `yaml:"provider"`
	Endpoint     string        `yaml:"endpoint"`
	Model        string        `yaml:"model"`
	APIKey       string        `yaml:"apiKey"`
	SystemPrompt string        `yaml:"systemPrompt"`
	Temperature  *float32      `yaml:"temperature"`
	Timeout      time.Duration `yaml:"timeout"`
}

// SamplingTemperature returns the configured temperature; 0 is a valid value.
func (o OracleConfig) SamplingTemperature() float32 {
	if o.Temperature == nil {
		return defaultTemperature
	}
	return *o.Temperature
}

// GeminiConfig is used when Oracle.Provider is "gemini".
type GeminiConfig struct {
	APIKey string `yaml:"apiKey"`
	Model  string `yaml:"model"`
}

// StorageConfig selects where history and captions live.
type StorageConfig struct {
	Driver         string `yaml:"driver"`
	DataDir        string `yaml:"dataDir"`
	HistoryPath    string `yaml:"historyPath"`
	CaptionLogPath string `yaml:"captionLogPath"`
	SQLitePath     string `yaml:"sqlitePath"`
}

// FetchConfig controls outbound page requests.
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	PerSourceLimit    int           `yaml:"perSourceLimit"`
	RequestsPerSecond float64       `yaml:"requestsPerSecond"`
	UserAgent         string        `yaml:"userAgent"`
}

// AnalysisConfig holds pipeline thresholds.
type AnalysisConfig struct {
	MinHeadlines    int            `yaml:"minHeadlines"`
	PromptHeadlines int            `yaml:"promptHeadlines"`
	TrendDays       int            `yaml:"trendDays"`
	TopicCandidates int            `yaml:"topicCandidates"`
	DefaultTone     string         `yaml:"defaultTone"`
	Timezone        string         `yaml:"timezone"`
	location        *time.Location `yaml:"-"`
}

// Location resolves the timezone used to derive the calendar day.
func (a AnalysisConfig) Location() *time.Location {
	if a.location != nil {
		return a.location
	}
	return time.Local
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
	BaseURL  string `yaml:"baseUrl"`
}

// SiteConfig describes a single outlet with its scanner strategy.
type SiteConfig struct {
	Name    string            `yaml:"name"`
	Scanner string            `yaml:"scanner"`
	URL     string            `yaml:"url"`
	Options map[string]string `yaml:"options"` // e.g. selector for html sites
}

// CategoryConfig is one taxonomy entry.
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Load reads YAML configuration from $WAHALA_CONFIG (if set) and applies
// environment overrides.
func Load() Config {
	return LoadFrom(os.Getenv(configPathEnv))
}

// LoadFrom is Load with an explicit YAML path; an empty path uses defaults.
func LoadFrom(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()
	cfg.resolvePaths()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(openRouterKeyEnv); v != "" {
		c.Oracle.APIKey = v
	}
	if v := os.Getenv(oracleModelEnv); v != "" {
		c.Oracle.Model = v
	}
	if v := os.Getenv(oracleProviderEnv); v != "" {
		c.Oracle.Provider = v
	}
	if v := os.Getenv(geminiKeyEnv); v != "" {
		c.Gemini.APIKey = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}
	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(dataDirEnv); v != "" {
		c.Storage.DataDir = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Analysis.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to local time", tz)
		loc = time.Local
	}
	c.Analysis.location = loc
}

// resolvePaths places relative store files under the data directory.
func (c *Config) resolvePaths() {
	dir := c.Storage.DataDir
	if dir == "" {
		return
	}
	for _, p := range []*string{&c.Storage.HistoryPath, &c.Storage.CaptionLogPath, &c.Storage.SQLitePath} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Oracle.Provider != "" {
		base.Oracle.Provider = override.Oracle.Provider
	}
	if override.Oracle.Endpoint != "" {
		base.Oracle.Endpoint = override.Oracle.Endpoint
	}
	if override.Oracle.Model != "" {
		base.Oracle.Model = override.Oracle.Model
	}
	if override.Oracle.APIKey != "" {
		base.Oracle.APIKey = override.Oracle.APIKey
	}
	if override.Oracle.SystemPrompt != "" {
		base.Oracle.SystemPrompt = override.Oracle.SystemPrompt
	}
	if override.Oracle.Temperature != nil {
		base.Oracle.Temperature = override.Oracle.Temperature
	}
	if override.Oracle.Timeout > 0 {
		base.Oracle.Timeout = override.Oracle.Timeout
	}

	if override.Gemini.APIKey != "" {
		base.Gemini.APIKey = override.Gemini.APIKey
	}
	if override.Gemini.Model != "" {
		base.Gemini.Model = override.Gemini.Model
	}

	if override.Storage.Driver != "" {
		base.Storage.Driver = override.Storage.Driver
	}
	if override.Storage.DataDir != "" {
		base.Storage.DataDir = override.Storage.DataDir
	}
	if override.Storage.HistoryPath != "" {
		base.Storage.HistoryPath = override.Storage.HistoryPath
	}
	if override.Storage.CaptionLogPath != "" {
		base.Storage.CaptionLogPath = override.Storage.CaptionLogPath
	}
	if override.Storage.SQLitePath != "" {
		base.Storage.SQLitePath = override.Storage.SQLitePath
	}

	if override.Fetch.Timeout > 0 {
		base.Fetch.Timeout = override.Fetch.Timeout
	}
	if override.Fetch.PerSourceLimit > 0 {
		base.Fetch.PerSourceLimit = override.Fetch.PerSourceLimit
	}
	if override.Fetch.RequestsPerSecond > 0 {
		base.Fetch.RequestsPerSecond = override.Fetch.RequestsPerSecond
	}
	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}

	if override.Analysis.MinHeadlines > 0 {
		base.Analysis.MinHeadlines = override.Analysis.MinHeadlines
	}
	if override.Analysis.PromptHeadlines > 0 {
		base.Analysis.PromptHeadlines = override.Analysis.PromptHeadlines
	}
	if override.Analysis.TrendDays > 0 {
		base.Analysis.TrendDays = override.Analysis.TrendDays
	}
	if override.Analysis.TopicCandidates > 0 {
		base.Analysis.TopicCandidates = override.Analysis.TopicCandidates
	}
	if override.Analysis.DefaultTone != "" {
		base.Analysis.DefaultTone = override.Analysis.DefaultTone
	}
	if override.Analysis.Timezone != "" {
		base.Analysis.Timezone = override.Analysis.Timezone
	}

	if len(override.Sites) > 0 {
		base.Sites = override.Sites
	}
	if len(override.Categories) > 0 {
		base.Categories = override.Categories
	}
	if len(override.Memes) > 0 {
		base.Memes = override.Memes
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}
	if override.Notifications.Telegram.BaseURL != "" {
		base.Notifications.Telegram.BaseURL = override.Notifications.Telegram.BaseURL
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Oracle: OracleConfig{
			Provider:     ProviderOpenAI,
			Endpoint:     "https://openrouter.ai/api/v1/chat/completions",
			Model:        "qwen/qwen3-coder:free",
			SystemPrompt: "You predict a single digit (1-5). Output exactly one character with no text.",
			Temperature:  ptr(float32(defaultTemperature)),
			Timeout:      30 * time.Second,
		},
		Gemini: GeminiConfig{Model: "gemini-1.5-flash"},
		Storage: StorageConfig{
			Driver:         DriverCSV,
			HistoryPath:    "wahala_history.csv",
			CaptionLogPath: "caption_log.csv",
			SQLitePath:     "wahala.db",
		},
		Fetch: FetchConfig{
			Timeout:           10 * time.Second,
			PerSourceLimit:    40,
			RequestsPerSecond: 4,
			UserAgent:         "Mozilla/5.0 (compatible; WahalaIndex/1.0)",
		},
		Analysis: AnalysisConfig{
			MinHeadlines:    10,
			PromptHeadlines: 60,
			TrendDays:       7,
			TopicCandidates: 12,
			DefaultTone:     "Gen-Z",
			Timezone:        defaultTimezone,
		},
		Sites: []SiteConfig{
			{Name: "Punch", Scanner: "html", URL: "https://punchng.com"},
			{Name: "Vanguard", Scanner: "html", URL: "https://www.vanguardngr.com/"},
			{Name: "Premium Times", Scanner: "html", URL: "https://www.premiumtimesng.com/"},
			{Name: "Daily Trust", Scanner: "html", URL: "https://dailytrust.com/"},
			{Name: "TheCable", Scanner: "html", URL: "https://www.thecable.ng/"},
			{Name: "Naija News", Scanner: "html", URL: "https://www.naijanews.com/"},
		},
		Memes: defaultMemes(),
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BaseURL: "https://api.telegram.org"},
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func defaultMemes() map[int][]string {
	return map[int][]string{
		1: {
			"https://media.giphy.com/media/l0HlA0x8BoK8PtGlO/giphy.gif",
			"https://media.giphy.com/media/111ebonMs90YLu/giphy.gif",
		},
		2: {
			"https://media2.giphy.com/media/fCmnDUmpNYqnE2PidN/giphy.gif",
			"https://media4.giphy.com/media/6doc3WcKb9o3OUwfzf/giphy.gif",
			"https://media3.giphy.com/media/QLKSt3wQqlj7a/giphy.gif",
		},
		3: {
			"https://media4.giphy.com/media/aGyMTA2jXy6o5pc6L7/giphy.gif",
			"https://media2.giphy.com/media/X8vcDprHF2PC5tNN1E/giphy.gif",
			"https://media1.giphy.com/media/zIZldEXyyo64qOIgvb/giphy.gif",
			"https://media0.giphy.com/media/dKJQWJA0RerYVcOM7l/giphy.gif",
			"https://media0.giphy.com/media/3o6Mb62DMFBELvevi8/giphy.gif",
		},
		4: {
			"https://media4.giphy.com/media/0yXjVvEM2VWUX2CWpE/giphy.gif",
			"https://media1.giphy.com/media/BJEGePnDfDemfw7SQV/giphy.gif",
			"https://media2.giphy.com/media/2UlW42qqNY9udwlOke/giphy.gif",
		},
		5: {
			"https://media1.giphy.com/media/nrXif9YExO9EI/giphy.gif",
			"https://media4.giphy.com/media/0Wzkc9iirQ4ZI7JoaD/giphy.gif",
		},
	}
}
