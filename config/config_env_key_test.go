package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbName":  "echofleet",
		},
		"docker": map[string]any{
			"configDir":      "",
			"portRangeStart": 0,
		},
		"activation": map[string]any{
			"proxyWsUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbName"},
		{envKey: "DOCKER_CONFIGDIR", want: "docker.configDir"},
		{envKey: "DOCKER_PORTRANGESTART", want: "docker.portRangeStart"},
		{envKey: "ACTIVATION_PROXYWSURL", want: "activation.proxyWsUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Docker.PortRangeStart != 8080 || cfg.Docker.PortRangeEnd != 8180 {
		t.Fatalf("unexpected port range %d-%d", cfg.Docker.PortRangeStart, cfg.Docker.PortRangeEnd)
	}
	if cfg.Docker.Image == "" {
		t.Fatal("default image not applied")
	}
	if cfg.Activation.TTL.Minutes() != 5 {
		t.Fatalf("unexpected activation TTL %s", cfg.Activation.TTL)
	}
	if cfg.Proxy.BackendURL != "http://localhost:3000" {
		t.Fatalf("unexpected proxy backend %q", cfg.Proxy.BackendURL)
	}
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Docker: &DockerConfig{PortRangeStart: 9000, PortRangeEnd: 9010, Image: "custom:latest"},
	}
	applyDefaults(cfg)

	if cfg.Docker.PortRangeStart != 9000 || cfg.Docker.PortRangeEnd != 9010 {
		t.Fatalf("configured port range was overwritten: %d-%d", cfg.Docker.PortRangeStart, cfg.Docker.PortRangeEnd)
	}
	if cfg.Docker.Image != "custom:latest" {
		t.Fatalf("configured image was overwritten: %q", cfg.Docker.Image)
	}
}

func TestPostgresConfigDSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "db.internal",
		Port:     "5432",
		UserName: "fleet",
		Password: "secret",
		DBName:   "echofleet",
	}

	want := "host=db.internal port=5432 user=fleet password=secret dbname=echofleet sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN() = %q, want %q", got, want)
	}
}

func TestDockerConfigInstanceHost(t *testing.T) {
	cfg := &DockerConfig{}
	if got := cfg.InstanceHost(); got != "localhost" {
		t.Fatalf("InstanceHost() = %q, want localhost", got)
	}

	cfg.ExternalHost = "fleet.example.com"
	if got := cfg.InstanceHost(); got != "fleet.example.com" {
		t.Fatalf("InstanceHost() = %q, want fleet.example.com", got)
	}
}
