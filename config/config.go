// Package config describes the recognized configuration options of the
// Deribit FIX client core and their validation rules, and loads them
// from a YAML file on disk.
package config

import (
	"os"

	"github.com/joaquinbejar/deribit-fix/errs"
	"gopkg.in/yaml.v3"
)

// Config is the full recognized-options surface of spec.md §6, plus
// the extra optional Logon tags surfaced by the original Rust
// implementation's session/fix_session.rs (SPEC_FULL §5).
type Config struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	UseSSL bool   `yaml:"use_ssl"`

	HeartbeatIntervalSecs int `yaml:"heartbeat_interval_secs"`

	ConnectionTimeoutSecs int `yaml:"connection_timeout_secs"`
	ReconnectAttempts     int `yaml:"reconnect_attempts"`
	ReconnectDelaySecs    int `yaml:"reconnect_delay_secs"`

	SenderCompID string `yaml:"sender_comp_id"`
	TargetCompID string `yaml:"target_comp_id"`

	CancelOnDisconnect bool `yaml:"cancel_on_disconnect"`

	AppID     string `yaml:"app_id"`
	AppSecret string `yaml:"app_secret"`

	// Optional Logon tags, all nil unless the caller opts in.
	UseWordsafeTags                *bool `yaml:"use_wordsafe_tags,omitempty"`
	DeribitSequential              *bool `yaml:"deribit_sequential,omitempty"`
	UnsubscribeExecutionReports    *bool `yaml:"unsubscribe_execution_reports,omitempty"`
	ConnectionOnlyExecutionReports *bool `yaml:"connection_only_execution_reports,omitempty"`
	ReportFillsAsExecReports       *bool `yaml:"report_fills_as_exec_reports,omitempty"`
	DisplayIncrementSteps          *bool `yaml:"display_increment_steps,omitempty"`
}

// Default endpoints (spec.md §6).
const (
	TestHostPlain = "test.deribit.com"
	TestPortPlain = 9881
	TestPortTLS   = 9883

	ProdHostPlain = "www.deribit.com"
	ProdPortPlain = 9880
	ProdPortTLS   = 9883
)

// DefaultTestConfig returns a Config pointed at the test environment
// with a canonical default table, collapsing the two parallel
// legacy/current default tables the original carried into one.
func DefaultTestConfig() *Config {
	return &Config{
		Host:                  TestHostPlain,
		Port:                  TestPortPlain,
		UseSSL:                false,
		HeartbeatIntervalSecs: 30,
		ConnectionTimeoutSecs: 10,
		ReconnectAttempts:     3,
		ReconnectDelaySecs:    5,
		SenderCompID:          "CLIENT",
		TargetCompID:          "DERIBITSERVER",
	}
}

// Load reads a YAML configuration file at path, starting from the
// test-environment defaults and overlaying whatever keys the file
// sets. Unknown keys are ignored; absent ones keep their default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrap(errs.KindConfig, err, "reading config file %s", path)
	}

	cfg := DefaultTestConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errs.Wrap(errs.KindConfig, err, "parsing config file %s", path)
	}
	return cfg, nil
}

// Validate rejects empty credentials/identifiers, a zero port, a
// non-positive heartbeat interval, and a partial app-credential pair
// (spec.md §6).
func (c *Config) Validate() error {
	if c.Username == "" {
		return errs.New(errs.KindConfig, "username must not be empty")
	}
	if c.Password == "" {
		return errs.New(errs.KindConfig, "password must not be empty")
	}
	if c.Host == "" {
		return errs.New(errs.KindConfig, "host must not be empty")
	}
	if c.Port == 0 {
		return errs.New(errs.KindConfig, "port must not be zero")
	}
	if c.HeartbeatIntervalSecs <= 0 {
		return errs.New(errs.KindConfig, "heartbeat_interval_secs must be > 0")
	}
	if c.SenderCompID == "" {
		return errs.New(errs.KindConfig, "sender_comp_id must not be empty")
	}
	if c.TargetCompID == "" {
		return errs.New(errs.KindConfig, "target_comp_id must not be empty")
	}
	if (c.AppID == "") != (c.AppSecret == "") {
		return errs.New(errs.KindConfig, "app_id and app_secret must both be present or both be absent")
	}
	return nil
}
