package config

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// UnknownKeyError is returned for keys that are not registered.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q, did you mean %q?", e.Key, e.Closest)
}

// Closest returns the registered key nearest to k by edit distance.
func Closest(k string) string {
	return lo.MinBy(Keys(), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
}

// Lookup returns the field registered under k.
func Lookup(k string) (Field, error) {
	f, ok := Default[k]
	if !ok {
		return Field{}, &UnknownKeyError{Key: k, Closest: Closest(k)}
	}
	return f, nil
}

// Set parses raw for the field k and applies it. Nothing changes when raw is invalid.
func Set(k string, raw ...string) (any, error) {
	f, err := Lookup(k)
	if err != nil {
		return nil, err
	}

	v, err := f.Parse(raw...)
	if err != nil {
		return nil, err
	}

	viper.Set(k, v)
	return v, nil
}

// Reset restores the given keys, or every key when none are given, to their defaults.
func Reset(keys ...string) error {
	if len(keys) == 0 {
		keys = Keys()
	}

	for _, k := range keys {
		f, err := Lookup(k)
		if err != nil {
			return err
		}
		viper.Set(k, f.Value)
	}

	return nil
}
