package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                 // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "dev/config.dev.jsonc"   // Path to config.json in development environment
	devSecretsPath = "dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

const (
	TokenStoreDb     = "db"
	TokenStoreMemory = "memory"
)

type Config struct {
	Secrets        Secrets       `json:"-"`
	LogFile        string        `json:"log_file"`
	LogLevel       string        `json:"log_level"`
	ServicePort    uint          `json:"service_port"`
	Host           string        `json:"host"`
	LedgerApiUrl   string        `json:"ledger_api_url"`
	RegistryApiUrl string        `json:"registry_api_url"`
	DbFile         string        `json:"db_file"`
	TokenStore     string        `json:"token_store"`
	Relay          RelaySchedule `json:"relay"`
	Cache          CacheLimits   `json:"cache"`
	Webhook        WebhookRules  `json:"webhook"`
}

type RelaySchedule struct {
	IntervalSec      int `json:"interval_sec"`
	Workers          int `json:"workers"`
	SendDelayMs      int `json:"send_delay_ms"`
	SchedWindowMin   int `json:"sched_window_min"`
	MaxTokensPerPush int `json:"max_tokens_per_push"`
	SendAttempts     int `json:"send_attempts"`
	SendBackoffMs    int `json:"send_backoff_ms"`
}

type CacheLimits struct {
	TtlSec     int `json:"ttl_sec"`
	MaxEntries int `json:"max_entries"`
}

type WebhookRules struct {
	MaxTimestampAgeSec int  `json:"max_timestamp_age_sec"`
	CheckRegistryKey   bool `json:"check_registry_key"`
}

type Secrets struct {
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)

	validateConfig(&config)
	return &config
}

// validateConfig fails loudly on config that would otherwise degrade silently.
// The in-memory token store must be an explicit choice: it loses all
// registrations on restart and is only meant for development.
func validateConfig(config *Config) {
	// User links and the delivery log always live in the database
	if config.DbFile == "" {
		log.Fatal("db_file is not set")
	}
	switch config.TokenStore {
	case TokenStoreDb:
	case TokenStoreMemory:
		// OK; NewMemTokenStore warns on startup
	default:
		log.Fatalf("token_store must be '%s' or '%s'; got '%s'",
			TokenStoreDb, TokenStoreMemory, config.TokenStore)
	}
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
