package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// parseString returns a parser accepting TOML strings. A nil check
// accepts any string.
func parseString(check func(string) error) func(any) (string, error) {
	return func(v any) (string, error) {
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("expected string, got %T", v)
		}

		if check != nil {
			if err := check(s); err != nil {
				return "", err
			}
		}

		return s, nil
	}
}

func parseBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected bool, got %T", v)
	}

	return b, nil
}

func parseLogLevel(v any) (zerolog.Level, error) {
	s, err := parseString(checkLogLevel)(v)
	if err != nil {
		return zerolog.NoLevel, err
	}

	return MustParseLogLevel(s), nil
}

func parseComparator(v any) (string, error) {
	s, err := parseString(checkComparator)(v)
	return strings.ToLower(s), err
}

func parseOutputFormat(v any) (OutputFormat, error) {
	s, err := parseString(checkOutputFormat)(v)
	if err != nil {
		return OutputFormatList, err
	}

	return MustParseOutputFormat(s), nil
}

func MustParseLogLevel(s string) zerolog.Level {
	l, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		panic(fmt.Sprintf("cannot parse %q to log level", s))
	}

	return l
}
