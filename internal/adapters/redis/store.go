// Package redis implements ports.ProblemStore on Redis, letting several
// generator processes feed one shared worksheet without duplicates.
package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/abacus/pkg/algebra"
)

// Store implements ports.ProblemStore using Redis. Problems live in a list
// (insertion order) with a set of question hashes alongside for duplicate
// screening.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for the worksheet keys.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix, isolating concurrent worksheets.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "abacus:worksheet:",
		ttl:    0, // no expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) listKey() string { return s.prefix + "problems" }
func (s *Store) seenKey() string { return s.prefix + "seen" }

func hashKey(p algebra.Problem) string {
	sum := sha256.Sum256([]byte(p.Key()))
	return hex.EncodeToString(sum[:])
}

// Add appends the problem unless its key was seen before. The seen-set
// insert decides atomically which writer owns a duplicate question.
func (s *Store) Add(ctx context.Context, p algebra.Problem) (bool, error) {
	added, err := s.client.SAdd(ctx, s.seenKey(), hashKey(p)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark problem seen: %w", err)
	}
	if added == 0 {
		return false, nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		return false, fmt.Errorf("failed to marshal problem: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.RPush(ctx, s.listKey(), data)
	if s.ttl > 0 {
		pipe.Expire(ctx, s.listKey(), s.ttl)
		pipe.Expire(ctx, s.seenKey(), s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to save to redis: %w", err)
	}
	return true, nil
}

// List returns the stored problems in insertion order.
func (s *Store) List(ctx context.Context) ([]algebra.Problem, error) {
	raw, err := s.client.LRange(ctx, s.listKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	problems := make([]algebra.Problem, 0, len(raw))
	for _, item := range raw {
		var p algebra.Problem
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal problem: %w", err)
		}
		problems = append(problems, p)
	}
	return problems, nil
}

// Len returns the number of stored problems.
func (s *Store) Len(ctx context.Context) (int, error) {
	n, err := s.client.LLen(ctx, s.listKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count problems: %w", err)
	}
	return int(n), nil
}

// Clear removes every stored problem.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.listKey(), s.seenKey()).Err(); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
