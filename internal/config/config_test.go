package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.Port != 25550 {
		t.Errorf("Server.Port = %d, want 25550", cfg.Server.Port)
	}
	if cfg.Filter.RoomIDs != "" {
		t.Errorf("Filter.RoomIDs = %q, want empty", cfg.Filter.RoomIDs)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8099")
	t.Setenv("ROOMID_FILTER", "123,456")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8099 {
		t.Errorf("Server.Port = %d, want 8099", cfg.Server.Port)
	}
	if cfg.Filter.RoomIDs != "123,456" {
		t.Errorf("Filter.RoomIDs = %q, want 123,456", cfg.Filter.RoomIDs)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}
