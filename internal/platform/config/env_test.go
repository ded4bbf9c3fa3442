package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Timeout int `env:"SENDGRID_MCP_TEST_TIMEOUT" envDefault:"30"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Timeout != 30 {
		t.Fatalf("expected default timeout 30, got %d", cfg.Timeout)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("SENDGRID_MCP_TEST_TIMEOUT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
