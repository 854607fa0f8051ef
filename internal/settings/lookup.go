package settings

import "os"

// Lookup reads a named configuration value. The boolean reports whether the
// value is set at all.
type Lookup interface {
	Lookup(name string) (string, bool)
}

// Environment reads values from the process environment.
type Environment struct{}

func NewEnvironment() Lookup {
	return Environment{}
}

func (Environment) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

type Values map[string]string

func (v Values) Lookup(name string) (string, bool) {
	value, ok := v[name]
	return value, ok
}

// Chain returns the first value found, in order.
type Chain []Lookup

func (c Chain) Lookup(name string) (string, bool) {
	for _, l := range c {
		if value, ok := l.Lookup(name); ok {
			return value, true
		}
	}

	return "", false
}
