package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/xvzc/ordtree/internal/compare"
	"golang.org/x/text/language"
)

func checkNonEmpty(v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("cannot be empty")
	}

	return nil
}

func checkLogLevel(v string) error {
	if !slices.Contains(availableLogLevels, strings.ToLower(v)) {
		return fmt.Errorf("possible values are %v", availableLogLevels)
	}

	return nil
}

func checkComparator(v string) error {
	names := compare.Names()
	if !slices.Contains(names, strings.ToLower(v)) {
		return fmt.Errorf("possible values are %v", names)
	}

	return nil
}

func checkOutputFormat(v string) error {
	if !slices.Contains(availableOutputFormats, strings.ToLower(v)) {
		return fmt.Errorf("possible values are %v", availableOutputFormats)
	}

	return nil
}

func checkLocale(v string) error {
	if _, err := language.Parse(v); err != nil {
		return fmt.Errorf("invalid BCP 47 tag %q", v)
	}

	return nil
}
