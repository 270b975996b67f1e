package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// YAMLConfig is a kong.ConfigurationLoader reading flag values from a flat
// YAML mapping. Keys are flag names; dashes may be written as underscores.
//
//	base-url: https://sites.google.com
//	out_dir: src/content/posts
//	delay: 2s
func YAMLConfig(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := values[key]; ok {
				return configValue(v), nil
			}
		}
		return nil, nil
	}), nil
}

// configValue renders YAML scalars as strings so kong's mappers parse them
// the same way as command-line values.
func configValue(v any) any {
	switch v := v.(type) {
	case string, []any:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
