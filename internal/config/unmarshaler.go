// Package config provides configuration loading, validation, and generation
// for the please bot.
package config

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/pleaselabs/please/pkg/config"
)

// unmarshalConfig loads a validated, fully-defaulted document into the typed
// Config through koanf.
func unmarshalConfig(merged map[string]any) (*config.Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(merged, "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load validated document")
	}

	var cfg config.Config

	decoder := customDecoderConfig()
	decoder.Result = &cfg

	unmarshalConf := koanf.UnmarshalConf{
		Tag:           "koanf",
		FlatPaths:     false,
		DecoderConfig: decoder,
	}

	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// customDecoderConfig returns a mapstructure decoder config with hooks for
// the Language and Severity enum types. The caller sets Result.
func customDecoderConfig() *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			stringToLanguageHookFunc(),
			stringToSeverityHookFunc(),
		),
		WeaklyTypedInput: true,
	}
}

// stringToLanguageHookFunc returns a decode hook converting strings to
// config.Language.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToLanguageHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Language]() {
			return data, nil
		}

		s, ok := data.(string)
		if !ok {
			return data, nil
		}

		return config.ParseLanguage(s)
	}
}

// stringToSeverityHookFunc returns a decode hook converting strings to
// config.Severity.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToSeverityHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Severity]() {
			return data, nil
		}

		s, ok := data.(string)
		if !ok {
			return data, nil
		}

		return config.ParseSeverity(s)
	}
}
