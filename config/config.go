package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	// Docker configuration for the instance orchestrator
	Docker *DockerConfig `json:"docker" yaml:"docker"`

	// Activation configuration for the device activation flow
	Activation *ActivationConfig `json:"activation" yaml:"activation"`

	// Proxy configuration for the device-facing edge server
	Proxy *ProxyConfig `json:"proxy" yaml:"proxy"`

	// QRCode configuration for activation QR rendering
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig defines the connection settings for the registry database.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     string `json:"port" yaml:"port"`
	UserName string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// DSN renders the keyword/value connection string consumed by the pgx driver.
func (c *PostgresConfig) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	parts := []string{
		"host=" + c.Host,
		"port=" + c.Port,
		"user=" + c.UserName,
		"password=" + c.Password,
		"dbname=" + c.DBName,
		"sslmode=" + sslMode,
	}

	return strings.Join(parts, " ")
}

// RedisConfig defines the connection settings for the activation store.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// DockerConfig defines the orchestrator settings: which image to run,
// where per-instance assets live on the host, and the host port range
// instances are mapped into.
type DockerConfig struct {
	Image          string `json:"image" yaml:"image"`
	ConfigDir      string `json:"configDir" yaml:"configDir"`
	RecordDir      string `json:"recordDir" yaml:"recordDir"`
	GreetingPath   string `json:"greetingPath" yaml:"greetingPath"`
	PortRangeStart int    `json:"portRangeStart" yaml:"portRangeStart"`
	PortRangeEnd   int    `json:"portRangeEnd" yaml:"portRangeEnd"`

	// ExternalHost replaces localhost in instance endpoints when the
	// containers are reachable through a public address.
	ExternalHost string `json:"externalHost" yaml:"externalHost"`
}

// InstanceHost returns the host devices should use to reach instances.
func (c *DockerConfig) InstanceHost() string {
	if c.ExternalHost != "" {
		return c.ExternalHost
	}

	return "localhost"
}

// ActivationConfig defines the activation code lifetime and the proxy URL
// returned to devices once they are bound.
type ActivationConfig struct {
	TTL        time.Duration `json:"ttl" yaml:"ttl"`
	ProxyWSURL string        `json:"proxyWsUrl" yaml:"proxyWsUrl"`
}

// ProxyConfig defines the device-facing edge server settings.
type ProxyConfig struct {
	Port           int           `json:"port" yaml:"port"`
	BackendURL     string        `json:"backendUrl" yaml:"backendUrl"`
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`
}

// QRCodeConfig defines QR code generation configuration.
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Docker == nil {
		cfg.Docker = &DockerConfig{}
	}
	if cfg.Docker.Image == "" {
		cfg.Docker.Image = "secondstate/echokit:latest-server-vad"
	}
	if cfg.Docker.ConfigDir == "" {
		cfg.Docker.ConfigDir = "./data/configs"
	}
	if cfg.Docker.RecordDir == "" {
		cfg.Docker.RecordDir = "./data/records"
	}
	if cfg.Docker.GreetingPath == "" {
		cfg.Docker.GreetingPath = "./data/hello.wav"
	}
	if cfg.Docker.PortRangeStart == 0 {
		cfg.Docker.PortRangeStart = 8080
	}
	if cfg.Docker.PortRangeEnd == 0 {
		cfg.Docker.PortRangeEnd = 8180
	}

	if cfg.Activation == nil {
		cfg.Activation = &ActivationConfig{}
	}
	if cfg.Activation.TTL == 0 {
		cfg.Activation.TTL = 5 * time.Minute
	}

	if cfg.Proxy == nil {
		cfg.Proxy = &ProxyConfig{}
	}
	if cfg.Proxy.Port == 0 {
		cfg.Proxy.Port = 10086
	}
	if cfg.Proxy.BackendURL == "" {
		cfg.Proxy.BackendURL = "http://localhost:3000"
	}
	if cfg.Proxy.RequestTimeout == 0 {
		cfg.Proxy.RequestTimeout = 30 * time.Second
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
