package config

import (
	"fmt"
	"strings"
)

type Storage struct {
	Backend StorageBackend `env:"STORAGE_BACKEND" envDefault:"MEMORY"`
	Seed    bool           `env:"STORAGE_SEED" envDefault:"true"`
	// AutoMigrate applies pending migrations on startup for the Postgres backend.
	AutoMigrate bool `env:"STORAGE_AUTO_MIGRATE" envDefault:"false"`
}

// StorageBackend selects where products are persisted.
type StorageBackend uint8

const (
	StorageBackendMemory StorageBackend = iota
	StorageBackendPostgres
)

// String returns the string representation of the storage backend.
func (b StorageBackend) String() string {
	return []string{"MEMORY", "POSTGRES"}[b]
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (b *StorageBackend) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "MEMORY", "INMEMORY":
		*b = StorageBackendMemory
	case "POSTGRES", "POSTGRESQL":
		*b = StorageBackendPostgres
	default:
		return fmt.Errorf("unknown storage backend: %s", text)
	}
	return nil
}

func (b StorageBackend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
