package config

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

// GetStructuredConfig builds the stamper configuration from the settings
// file, environment and the explicitly set flags of fs, then validates it.
func GetStructuredConfig(fs *pflag.FlagSet, environment map[string]string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv(environment).
		withFlags(fs).
		withFile().
		build()
}

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// build merges the collected configs in order, later ones overriding earlier
// ones, applies defaults and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithTransformers(pointerTransformers{})); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv(environment map[string]string) *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, environment); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	flagsCfg, err := parseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withFile loads the settings file named by the already collected configs
// (the last non-empty path wins) and puts it first, below env and flags.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			path = cfg.ConfigFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append([]*StructuredConfig{fileCfg}, b.configs...)
	return b
}

// pointerTransformers makes a set pointer in a later source replace the
// earlier one as a whole. Without it mergo merges the pointed-to values and
// skips zero ones, so "indent: 0" could not override "indent: 4".
type pointerTransformers struct{}

func (pointerTransformers) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	switch typ {
	case reflect.TypeOf((*int)(nil)), reflect.TypeOf((*bool)(nil)):
		return func(dst, src reflect.Value) error {
			if dst.CanSet() && !src.IsNil() {
				dst.Set(src)
			}
			return nil
		}
	}

	return nil
}
