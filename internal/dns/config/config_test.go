package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	opts, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if opts.WriteBufferCapacity != 512 {
		t.Errorf("WriteBufferCapacity = %d, want 512", opts.WriteBufferCapacity)
	}
	if opts.DefaultUDPPayloadSize != 1232 {
		t.Errorf("DefaultUDPPayloadSize = %d, want 1232", opts.DefaultUDPPayloadSize)
	}
	if opts.StrictSRVCompression {
		t.Errorf("StrictSRVCompression = true, want false")
	}
	if opts.IDNANormalize {
		t.Errorf("IDNANormalize = true, want false")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DNSWIRE_WRITE_BUFFER_CAPACITY", "1024")
	t.Setenv("DNSWIRE_STRICT_SRV_COMPRESSION", "true")
	t.Setenv("DNSWIRE_IDNA_NORMALIZE", "true")

	opts, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if opts.WriteBufferCapacity != 1024 {
		t.Errorf("WriteBufferCapacity = %d, want 1024", opts.WriteBufferCapacity)
	}
	if !opts.StrictSRVCompression {
		t.Errorf("StrictSRVCompression = false, want true")
	}
	if !opts.IDNANormalize {
		t.Errorf("IDNANormalize = false, want true")
	}
}

func TestLoad_InvalidUDPPayloadSize(t *testing.T) {
	t.Setenv("DNSWIRE_DEFAULT_UDP_PAYLOAD_SIZE", "10")
	if _, err := Load(); err == nil {
		t.Fatal("expected validation error for undersized DefaultUDPPayloadSize, got nil")
	}
}

func TestLoad_WhenDefaultLoadFails(t *testing.T) {
	orig := defaultLoader
	defaultLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { defaultLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading defaults, got nil")
	}
}

func TestLoad_WhenEnvLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error { return errors.New("mocked error") }
	defer func() { envLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatal("expected error when loading env, got nil")
	}
}
