package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates every runtime setting for the service.
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Business BusinessConfig
	Leads    LeadsConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	leads, err := loadLeadsConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		AI:       ai,
		Business: loadBusinessConfig(),
		Leads:    leads,
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
	StaticDir      string
	ChatPage       string
	AdminPage      string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "10000"
	}

	addr := port
	if !strings.Contains(port, ":") {
		if strings.Contains(port, " ") {
			return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		addr = ":" + port
	}

	origins := splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS",
		"https://astrooutdoordesigns.com,https://www.astrooutdoordesigns.com,https://astro-fence-assistant.onrender.com"))

	return ServerConfig{
		Addr:           addr,
		AllowedOrigins: origins,
		StaticDir:      getEnvOrDefault("STATIC_DIR", "static"),
		ChatPage:       getEnvOrDefault("CHAT_PAGE", "chat.html"),
		AdminPage:      getEnvOrDefault("ADMIN_PAGE", "admin.html"),
	}, nil
}

// AIConfig describes the upstream model provider.
type AIConfig struct {
	APIKey      string
	Model       string
	VisionModel string
	BaseURL     string
	MaxTokens   int
	Timeout     time.Duration
}

// Enabled reports whether the required credential is present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadAIConfig() (AIConfig, error) {
	maxTokens := 600
	if override, err := parseOptionalIntEnv("CHAT_MAX_TOKENS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("CHAT_MAX_TOKENS must be positive, got %d", *override)
		}
		maxTokens = *override
	}

	timeout := 30 * time.Second
	if override, err := parseOptionalIntEnv("CHAT_TIMEOUT_SECONDS"); err != nil {
		return AIConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return AIConfig{}, fmt.Errorf("CHAT_TIMEOUT_SECONDS must be positive, got %d", *override)
		}
		timeout = time.Duration(*override) * time.Second
	}

	return AIConfig{
		APIKey:      strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		Model:       getEnvOrDefault("CHAT_MODEL", "claude-haiku-4-5-20251001"),
		VisionModel: getEnvOrDefault("CHAT_VISION_MODEL", "claude-sonnet-4-5-20250929"),
		BaseURL:     getEnvOrDefault("ANTHROPIC_API_URL", "https://api.anthropic.com/v1/messages"),
		MaxTokens:   maxTokens,
		Timeout:     timeout,
	}, nil
}

// BusinessConfig carries the contact card baked into prompts and fallbacks.
type BusinessConfig struct {
	Name        string
	Phone       string
	Email       string
	Facebook    string
	Website     string
	ServiceArea string
}

func loadBusinessConfig() BusinessConfig {
	return BusinessConfig{
		Name:        getEnvOrDefault("BUSINESS_NAME", "Astro Outdoor Designs"),
		Phone:       getEnvOrDefault("BUSINESS_PHONE", "832-280-5783"),
		Email:       getEnvOrDefault("BUSINESS_EMAIL", "admin@kingwoodfencing.com"),
		Facebook:    getEnvOrDefault("FACEBOOK_PAGE", "www.facebook.com/astrooutdoordesigns"),
		Website:     getEnvOrDefault("WEBSITE", "astrooutdoordesigns.com"),
		ServiceArea: getEnvOrDefault("SERVICE_AREA", "Kingwood / Houston, TX"),
	}
}

// LeadsConfig describes the lead sinks.
type LeadsConfig struct {
	FilePath      string
	BrevoAPIKey   string
	BrevoURL      string
	NotifyEmail   string
	FromEmail     string
	SheetsWebhook string
	SinkTimeout   time.Duration
}

func loadLeadsConfig() (LeadsConfig, error) {
	timeout := 10 * time.Second
	if override, err := parseOptionalIntEnv("LEAD_SINK_TIMEOUT_SECONDS"); err != nil {
		return LeadsConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return LeadsConfig{}, fmt.Errorf("LEAD_SINK_TIMEOUT_SECONDS must be positive, got %d", *override)
		}
		timeout = time.Duration(*override) * time.Second
	}

	return LeadsConfig{
		FilePath:      getEnvOrDefault("LEADS_FILE", "leads.csv"),
		BrevoAPIKey:   strings.TrimSpace(os.Getenv("BREVO_API_KEY")),
		BrevoURL:      getEnvOrDefault("BREVO_API_URL", "https://api.brevo.com/v3/smtp/email"),
		NotifyEmail:   getEnvOrDefault("LEAD_NOTIFY_EMAIL", "admin@astrooutdoordesigns.com"),
		FromEmail:     getEnvOrDefault("BREVO_FROM_EMAIL", "forms@astrooutdoordesigns.com"),
		SheetsWebhook: strings.TrimSpace(os.Getenv("SHEETS_WEBHOOK_URL")),
		SinkTimeout:   timeout,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
