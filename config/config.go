package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CalendarDriverGoogle = "google"
	CalendarDriverCalDAV = "caldav"

	MailDriverSMTP  = "smtp"
	MailDriverGmail = "gmail"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Booking
	Calendar       CalendarConfig
	GoogleCalendar GoogleCalendarConfig
	CalDAV         CalDAVConfig
	Meeting        MeetingConfig
	Mail           MailConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type CalendarConfig struct {
	Driver          string // google | caldav
	VerifyOnStartup bool
}

type GoogleCalendarConfig struct {
	Credentials     string // raw service-account JSON
	CredentialsPath string // used when Credentials is empty
	CalendarID      string
}

// HasCredentials reports whether a service-account credential is configured in either form.
func (c GoogleCalendarConfig) HasCredentials() bool {
	return c.Credentials != "" || c.CredentialsPath != ""
}

type CalDAVConfig struct {
	URL          string
	Username     string
	Password     string
	CalendarPath string
}

type MeetingConfig struct {
	Link string
}

type MailConfig struct {
	Driver          string // smtp | gmail
	User            string
	Pass            string
	SMTPHost        string
	SMTPPort        int
	VerifyOnStartup bool
}

// ConfigurationError lists required settings that are absent. The service must not start.
type ConfigurationError struct {
	Keys []string
}

func (e *ConfigurationError) Error() string {
	return "missing required configuration: " + strings.Join(e.Keys, ", ")
}

// envAliases are the short environment names accepted next to the derived ones
// (http_server.port is also read from HTTP_SERVER_PORT).
var envAliases = map[string]string{
	"http_server.port":            "PORT",
	"google_calendar.credentials": "CREDENTIALS",
	"google_calendar.calendar_id": "CALENDAR_ID",
	"meeting.link":                "GMEETLINK",
	"mail.user":                   "EMAIL_USER",
	"mail.pass":                   "EMAIL_PASS",
}

// Load loads configuration using Viper.
// A .env file in the working directory is applied first.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, alias := range envAliases {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), alias); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Calendar
	cfg.Calendar.Driver = strings.ToLower(v.GetString("calendar.driver"))
	cfg.Calendar.VerifyOnStartup = v.GetBool("calendar.verify_on_startup")
	cfg.GoogleCalendar.Credentials = v.GetString("google_calendar.credentials")
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.CalDAV.URL = v.GetString("caldav.url")
	cfg.CalDAV.Username = v.GetString("caldav.username")
	cfg.CalDAV.Password = v.GetString("caldav.password")
	cfg.CalDAV.CalendarPath = v.GetString("caldav.calendar_path")

	// Meeting
	cfg.Meeting.Link = v.GetString("meeting.link")

	// Mail
	cfg.Mail.Driver = strings.ToLower(v.GetString("mail.driver"))
	cfg.Mail.User = v.GetString("mail.user")
	cfg.Mail.Pass = v.GetString("mail.pass")
	cfg.Mail.SMTPHost = v.GetString("mail.smtp_host")
	cfg.Mail.SMTPPort = v.GetInt("mail.smtp_port")
	cfg.Mail.VerifyOnStartup = v.GetBool("mail.verify_on_startup")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 5000)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	v.SetDefault("calendar.driver", CalendarDriverGoogle)
	v.SetDefault("calendar.verify_on_startup", true)

	v.SetDefault("mail.driver", MailDriverSMTP)
	v.SetDefault("mail.smtp_host", "smtp.gmail.com")
	v.SetDefault("mail.smtp_port", 587)
	v.SetDefault("mail.verify_on_startup", true)
}

// validate collects every missing required key so the operator sees them all at once.
func (c *Config) validate() error {
	var missing []string

	switch c.Calendar.Driver {
	case CalendarDriverGoogle:
		if !c.GoogleCalendar.HasCredentials() {
			missing = append(missing, "google_calendar.credentials")
		}
		if c.GoogleCalendar.CalendarID == "" {
			missing = append(missing, "google_calendar.calendar_id")
		}
	case CalendarDriverCalDAV:
		if c.CalDAV.URL == "" {
			missing = append(missing, "caldav.url")
		}
		if c.CalDAV.CalendarPath == "" {
			missing = append(missing, "caldav.calendar_path")
		}
	default:
		return fmt.Errorf("unknown calendar.driver %q", c.Calendar.Driver)
	}

	if c.Meeting.Link == "" {
		missing = append(missing, "meeting.link")
	}
	if c.Mail.User == "" {
		missing = append(missing, "mail.user")
	}

	switch c.Mail.Driver {
	case MailDriverSMTP:
		if c.Mail.Pass == "" {
			missing = append(missing, "mail.pass")
		}
	case MailDriverGmail:
		if !c.GoogleCalendar.HasCredentials() && c.Calendar.Driver != CalendarDriverGoogle {
			missing = append(missing, "google_calendar.credentials")
		}
	default:
		return fmt.Errorf("unknown mail.driver %q", c.Mail.Driver)
	}

	if len(missing) > 0 {
		return &ConfigurationError{Keys: missing}
	}
	return nil
}
