package settings_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"github.com/ATenderholt/rainbow-copy/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filterExample = `s3Key:
  filterRules:
    - name: prefix
      value: AWSLogs/
    - name: suffix
      value: .log
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filter.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLoadFilter(t *testing.T) {
	path := writeFile(t, filterExample)

	filter, err := settings.LoadFilter(path)
	require.NoError(t, err)

	assert.Equal(t, []domain.FilterRule{
		{Name: domain.PrefixFilter, Value: "AWSLogs/"},
		{Name: domain.SuffixFilter, Value: ".log"},
	}, filter.S3Key.FilterRules)
	assert.True(t, filter.Match("AWSLogs/today.log"))
	assert.False(t, filter.Match("AWSLogs/today.txt"))
}

func TestLoadFilterEmptyPath(t *testing.T) {
	filter, err := settings.LoadFilter("")
	require.NoError(t, err)
	assert.True(t, filter.Match("anything"))
}

func TestLoadFilterMissingFile(t *testing.T) {
	_, err := settings.LoadFilter(filepath.Join(t.TempDir(), "missing.yaml"))

	var loadErr settings.LoadError
	assert.True(t, errors.As(err, &loadErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFilterUnknownRule(t *testing.T) {
	path := writeFile(t, "s3Key:\n  filterRules:\n    - name: contains\n      value: x\n")

	_, err := settings.LoadFilter(path)

	var decodeErr settings.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestLoadFilterInvalidYaml(t *testing.T) {
	path := writeFile(t, "s3Key: [unterminated")

	_, err := settings.LoadFilter(path)

	var decodeErr settings.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}
