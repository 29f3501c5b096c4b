package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DispatchPort != "8000" {
		t.Errorf("Expected dispatch port 8000, got %s", cfg.DispatchPort)
	}
	if cfg.Gateway.IdleTimeout != 5*time.Second {
		t.Errorf("Expected 5s idle timeout, got %s", cfg.Gateway.IdleTimeout)
	}
	if cfg.Auth.SessionTTL != 24*time.Hour {
		t.Errorf("Expected 24h session TTL, got %s", cfg.Auth.SessionTTL)
	}
	if cfg.WSAddr() != "127.0.0.1:8080" {
		t.Errorf("Expected default WS addr, got %s", cfg.WSAddr())
	}
	if cfg.PushAddr() != "127.0.0.1:50060" {
		t.Errorf("Expected default push addr, got %s", cfg.PushAddr())
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PUBLIC_HOST", "10.1.2.3")
	t.Setenv("GATEWAY_WS_PORT", "9090")
	t.Setenv("GATEWAY_IDLE_TIMEOUT", "7s")
	t.Setenv("MYSQL_READ_DSNS", "a, b ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.WSAddr() != "10.1.2.3:9090" {
		t.Errorf("Expected overridden WS addr, got %s", cfg.WSAddr())
	}
	if cfg.Gateway.IdleTimeout != 7*time.Second {
		t.Errorf("Expected 7s idle timeout, got %s", cfg.Gateway.IdleTimeout)
	}
	if len(cfg.MySQL.ReadDSNs) != 2 || cfg.MySQL.ReadDSNs[0] != "a" || cfg.MySQL.ReadDSNs[1] != "b" {
		t.Errorf("Expected trimmed DSN list, got %v", cfg.MySQL.ReadDSNs)
	}
}

func TestValidate_HeartbeatMustStayBelowHalfTTL(t *testing.T) {
	t.Setenv("DIRECTORY_SERVICE_TTL", "4s")
	t.Setenv("DIRECTORY_HEARTBEAT_INTERVAL", "3s")

	if _, err := Load(); err == nil {
		t.Error("Expected validation failure for heartbeat >= TTL/2")
	}
}
