// Package storage is the key/value "local storage" the store persists its
// collections into. Values are opaque JSON documents.
package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var ErrNotFound = errors.New("storage: key not found")

type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("storage: invalid key %q", key)
	}
	return nil
}
