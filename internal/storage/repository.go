// Package storage persists game snapshots under a player-chosen name.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"citadels-console/internal/engine"
)

var ErrNotFound = errors.New("snapshot not found")

// Repository saves and loads snapshots by name. Saving under an existing
// name overwrites it.
type Repository interface {
	Save(ctx context.Context, name string, s *engine.Snapshot) error
	Load(ctx context.Context, name string) (*engine.Snapshot, error)
	List(ctx context.Context) ([]string, error)
	Close() error
}

// Store kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindRedis  = "redis"
	KindMemory = "memory"
)

// Options selects and configures a repository.
type Options struct {
	Kind       string
	Dir        string
	SQLitePath string
	RedisURL   string
}

// Open builds the repository named by opts.Kind.
func Open(ctx context.Context, opts Options) (Repository, error) {
	switch opts.Kind {
	case KindFile, "":
		r, err := NewFile(opts.Dir)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindSQLite:
		r, err := OpenSQLite(ctx, opts.SQLitePath)
		if err != nil {
			return nil, err
		}
		return r, nil
	case KindRedis:
		return NewRedisFromURL(ctx, opts.RedisURL)
	case KindMemory:
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown store %q", opts.Kind)
}

// normalizeName accepts "name" or "name.json" and rejects anything that
// could escape a directory.
func normalizeName(name string) (string, error) {
	n := strings.TrimSuffix(strings.TrimSpace(name), ".json")
	if n == "" || n == "." || n == ".." || strings.ContainsAny(n, `/\`) {
		return "", fmt.Errorf("invalid snapshot name %q", name)
	}
	return n, nil
}

func encode(s *engine.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, errors.New("snapshot cannot be nil")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*engine.Snapshot, error) {
	var s engine.Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	if s.Version > engine.SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than %d", s.Version, engine.SnapshotVersion)
	}
	return &s, nil
}
