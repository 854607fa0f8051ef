package settings

import "fmt"

type LoadError struct {
	path string
	base error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("Unable to load Filter from %s: %v", e.path, e.base)
}

func (e LoadError) Unwrap() error {
	return e.base
}

type DecodeError struct {
	path string
	base error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("Unable to decode file at %s from yaml: %v", e.path, e.base)
}

func (e DecodeError) Unwrap() error {
	return e.base
}
