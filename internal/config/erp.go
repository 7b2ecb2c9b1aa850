package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/safee-analytics/erp-bridge/internal/odoo"
	"github.com/spf13/viper"
)

// ERPProfile is the on-disk shape of the ERP connection profile.
type ERPProfile struct {
	URL            string `mapstructure:"url"`
	Database       string `mapstructure:"database"`
	Username       string `mapstructure:"username"`
	Password       string `mapstructure:"password"`
	TimeoutSeconds int    `mapstructure:"timeoutSeconds"`
}

// ERPConfigHolder serves the current ERP connection profile and reloads it
// when the profile file changes, so credential rotation does not require a
// restart. Falls back to environment configuration when no file is present.
type ERPConfigHolder struct {
	current atomic.Value // holds ERPProfile
}

func NewERPConfigHolder(cfg Config) (*ERPConfigHolder, error) {
	v := viper.New()

	v.SetConfigName("erp")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/erp-bridge/config") // Volume-mounted config
	v.AddConfigPath("/etc/erp-bridge")            // System config
	v.AddConfigPath(".")                          // Current directory (dev mode)

	v.SetEnvPrefix("ERPBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := ERPProfile{
		URL:            cfg.ERPURL,
		Database:       cfg.ERPDatabase,
		Username:       cfg.ERPUsername,
		Password:       cfg.ERPPassword,
		TimeoutSeconds: cfg.ERPTimeout,
	}

	fileFound := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		fileFound = false
	}

	profile := defaults
	if fileFound {
		if err := v.UnmarshalKey("erp", &profile); err != nil {
			return nil, err
		}
		mergeProfileDefaults(&profile, defaults)
	}
	if err := validateERPProfile(profile); err != nil {
		return nil, err
	}

	holder := &ERPConfigHolder{}
	holder.current.Store(profile)

	if fileFound {
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			updated := defaults
			if err := v.UnmarshalKey("erp", &updated); err != nil {
				log.Printf("[erp-config] reload failed: %v", err)
				return
			}
			mergeProfileDefaults(&updated, defaults)
			if err := validateERPProfile(updated); err != nil {
				log.Printf("[erp-config] invalid config ignored: %v", err)
				return
			}
			holder.current.Store(updated)
			log.Printf("[erp-config] reloaded from %s", e.Name)
		})
	}

	return holder, nil
}

// ERP implements odoo.ConfigSource.
func (h *ERPConfigHolder) ERP() odoo.Config {
	profile := h.current.Load().(ERPProfile)
	timeout := time.Duration(profile.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return odoo.Config{
		URL:      strings.TrimRight(profile.URL, "/"),
		Database: profile.Database,
		Username: profile.Username,
		Password: profile.Password,
		Timeout:  timeout,
	}
}

func mergeProfileDefaults(profile *ERPProfile, defaults ERPProfile) {
	if strings.TrimSpace(profile.URL) == "" {
		profile.URL = defaults.URL
	}
	if strings.TrimSpace(profile.Database) == "" {
		profile.Database = defaults.Database
	}
	if strings.TrimSpace(profile.Username) == "" {
		profile.Username = defaults.Username
	}
	if strings.TrimSpace(profile.Password) == "" {
		profile.Password = defaults.Password
	}
	if profile.TimeoutSeconds == 0 {
		profile.TimeoutSeconds = defaults.TimeoutSeconds
	}
}

func validateERPProfile(profile ERPProfile) error {
	if strings.TrimSpace(profile.URL) == "" {
		return errors.New("erp.url cannot be empty")
	}
	if strings.TrimSpace(profile.Database) == "" {
		return errors.New("erp.database cannot be empty")
	}
	if strings.TrimSpace(profile.Username) == "" {
		return errors.New("erp.username cannot be empty")
	}
	return nil
}
