package domain

import (
	"fmt"
	"strings"
)

const (
	PrefixFilter = "prefix"
	SuffixFilter = "suffix"
)

type FilterRule struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

func (f FilterRule) FilterKey(key string) bool {
	if f.Name == PrefixFilter {
		return strings.HasPrefix(key, f.Value)
	}

	if f.Name == SuffixFilter {
		return strings.HasSuffix(key, f.Value)
	}

	panic("expected FilterRule Name to be prefix or suffix but was " + f.Name)
}

type S3Key struct {
	FilterRules []FilterRule `xml:"FilterRule" yaml:"filterRules"`
}

// Filter selects object keys by prefix and suffix rules, the same way S3
// notification configurations do. A Filter without rules accepts every key.
type Filter struct {
	S3Key S3Key `yaml:"s3Key"`
}

func (f Filter) Validate() error {
	for i, rule := range f.S3Key.FilterRules {
		if rule.Name != PrefixFilter && rule.Name != SuffixFilter {
			return fmt.Errorf("filter rule %d: name must be %s or %s but was %q", i, PrefixFilter, SuffixFilter, rule.Name)
		}
	}

	return nil
}

func (f Filter) Match(key string) bool {
	for _, rule := range f.S3Key.FilterRules {
		if !rule.FilterKey(key) {
			return false
		}
	}

	return true
}
