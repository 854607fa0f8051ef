package settings

import (
	"os"

	"github.com/ATenderholt/rainbow-copy/internal/domain"
	"gopkg.in/yaml.v2"
)

// LoadFilter reads prefix/suffix rules from a yaml file. An empty path
// yields a Filter that accepts every key.
func LoadFilter(path string) (domain.Filter, error) {
	var filter domain.Filter
	if path == "" {
		return filter, nil
	}

	file, err := os.Open(path)
	if err != nil {
		err := LoadError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return filter, err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(&filter)
	if err != nil {
		err := DecodeError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return filter, err
	}

	err = filter.Validate()
	if err != nil {
		err := DecodeError{
			path: path,
			base: err,
		}
		logger.Error(err)
		return filter, err
	}

	logger.Infof("Loaded %d filter rules from %s", len(filter.S3Key.FilterRules), path)
	return filter, nil
}
