package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disruptops/cognitocache/internal/cache"
	"github.com/disruptops/cognitocache/internal/core"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
defaults:
  region: us-east-1
  client_id: client-abc
  user_pool_id: us-east-1_XYZ
  token_type: id
cache:
  type: file
  path: /tmp/cognitocache-test.json
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Defaults.Region != "us-east-1" {
		t.Errorf("region = %q, want us-east-1", cfg.Defaults.Region)
	}
	if cfg.Cache.Type != "file" {
		t.Errorf("cache type = %q, want file", cfg.Cache.Type)
	}
	if cfg.Cache.Config["path"] != "/tmp/cognitocache-test.json" {
		t.Errorf("inline cache option 'path' = %v, want /tmp/cognitocache-test.json", cfg.Cache.Config["path"])
	}
}

func TestLoad_EmptyPathYieldsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Cache.Type != "file" {
		t.Errorf("default cache type = %q, want file", cfg.Cache.Type)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty config", cfg: Config{}},
		{name: "memory cache", cfg: Config{Cache: CacheConfig{Type: "memory"}}},
		{name: "unknown cache type", cfg: Config{Cache: CacheConfig{Type: "redis"}}, wantErr: true},
		{name: "valid token type", cfg: Config{Defaults: Defaults{TokenType: "raw_request"}}},
		{name: "unknown token type", cfg: Config{Defaults: Defaults{TokenType: "refresh"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildCache(t *testing.T) {
	memCfg := Config{Cache: CacheConfig{Type: "memory"}}
	store, err := memCfg.BuildCache()
	if err != nil {
		t.Fatalf("BuildCache(memory) error = %v", err)
	}
	if _, ok := store.(*cache.Memory); !ok {
		t.Errorf("BuildCache(memory) = %T, want *cache.Memory", store)
	}

	fileCfg := Config{Cache: CacheConfig{
		Type:   "file",
		Config: map[string]any{"path": filepath.Join(t.TempDir(), "c.json")},
	}}
	store, err = fileCfg.BuildCache()
	if err != nil {
		t.Fatalf("BuildCache(file) error = %v", err)
	}
	if _, ok := store.(*cache.File); !ok {
		t.Errorf("BuildCache(file) = %T, want *cache.File", store)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{Defaults: Defaults{
		Region:     "us-east-1",
		ClientID:   "client-abc",
		UserPoolID: "us-east-1_XYZ",
		TokenType:  "id",
	}}

	creds := core.CredentialSet{
		Username: "jdoe",
		Password: "hunter2",
		Region:   "eu-west-1", // explicitly set, must win over the default
	}
	cfg.ApplyDefaults(&creds)

	if creds.Region != "eu-west-1" {
		t.Errorf("region = %q, want explicit value preserved", creds.Region)
	}
	if creds.ClientID != "client-abc" {
		t.Errorf("client id = %q, want defaulted", creds.ClientID)
	}
	if creds.UserPoolID != "us-east-1_XYZ" {
		t.Errorf("user pool id = %q, want defaulted", creds.UserPoolID)
	}
	if creds.TokenType != core.TokenTypeID {
		t.Errorf("token type = %q, want defaulted to id", creds.TokenType)
	}
}
