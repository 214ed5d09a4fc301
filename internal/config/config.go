package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// New parses environment variables into T. Every invalid variable is reported,
// not only the first one.
func New[T any]() (T, error) {
	cfg, err := env.ParseAs[T]()
	if err == nil {
		return cfg, nil
	}

	var aggErr env.AggregateError
	if errors.As(err, &aggErr) {
		msgs := make([]string, len(aggErr.Errors))
		for i, e := range aggErr.Errors {
			msgs[i] = e.Error()
		}
		return cfg, fmt.Errorf("parse env: %s", strings.Join(msgs, "; "))
	}

	return cfg, fmt.Errorf("parse env: %w", err)
}
