// Package config loads CodecOptions, the small set of encoder-tunable
// knobs host applications may want to set without plumbing functional
// options through every constructor: initial write-buffer capacity, the
// default EDNS0 UDP payload size, whether SRV targets participate in name
// compression, and whether labels are IDNA-normalized before validation.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// CodecOptions holds the codec's tunable behavior. The wire format itself
// is fixed by the RFCs it implements; these options only affect choices the
// RFCs leave to the implementation.
type CodecOptions struct {
	// WriteBufferCapacity is the initial capacity reserved for an encode
	// buffer before it grows on demand.
	WriteBufferCapacity int `koanf:"write_buffer_capacity" validate:"required,gte=1"`

	// DefaultUDPPayloadSize is an EDNS0 UDP payload size (RFC 6891 §6.2.3)
	// for host applications to use. The codec does not read it: the OPT
	// record that domain.BuildMessage inserts on its own advertises
	// domain.DefaultUDPPayloadSize (512).
	DefaultUDPPayloadSize uint16 `koanf:"default_udp_payload_size" validate:"required,gte=512"`

	// StrictSRVCompression, when true, disables name compression on SRV
	// target names, matching implementations that read RFC 2782's silence
	// on the matter as a prohibition rather than a permission.
	StrictSRVCompression bool `koanf:"strict_srv_compression"`

	// IDNANormalize, when true, converts Unicode labels to their
	// ASCII-Compatible-Encoding form before length and character-class
	// validation runs.
	IDNANormalize bool `koanf:"idna_normalize"`
}

// DefaultCodecOptions are the options applied before any environment
// overlay is loaded.
var DefaultCodecOptions = CodecOptions{
	WriteBufferCapacity:   512,
	DefaultUDPPayloadSize: 1232, // RFC 9460-era safe default over RFC 6891's old 512
	StrictSRVCompression:  false,
	IDNANormalize:         false,
}

// envLoader loads environment variables prefixed "DNSWIRE_" into k. Kept as
// a package var so tests can substitute a failing stub.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSWIRE_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "DNSWIRE_")), value
		},
	}), nil)
}

// defaultLoader loads DefaultCodecOptions into k. Kept as a package var so
// tests can substitute a failing stub.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DefaultCodecOptions, "koanf"), nil)
}

// Load builds a CodecOptions value from DefaultCodecOptions overlaid with
// any DNSWIRE_-prefixed environment variables, then validates it.
func Load() (*CodecOptions, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var opts CodecOptions
	if err := k.Unmarshal("", &opts); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&opts); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &opts, nil
}
