// Package storage persists the access token and the last fetched task
// snapshot in a local BoltDB file, playing the role a key-value store plays
// on a device: survive restarts, keep something to show while offline.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"task-manager-cli/internal/models"
)

var (
	authBucket  = []byte("auth")
	cacheBucket = []byte("cache")

	tokenKey = []byte("access_token")
	tasksKey = []byte("tasks")
	statsKey = []byte("stats")
)

type Store struct {
	db *bolt.DB
}

// Open initializes the BoltDB file and ensures the buckets exist.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{authBucket, cacheBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Token implements api.TokenStore. A missing token is returned as "".
func (s *Store) Token() (string, error) {
	var token string
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(authBucket).Get(tokenKey); v != nil {
			token = string(v)
		}
		return nil
	})
	return token, err
}

func (s *Store) Save(token string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(authBucket).Put(tokenKey, []byte(token))
	})
}

func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(authBucket).Delete(tokenKey)
	})
}

// SaveTasks replaces the cached task snapshot.
func (s *Store) SaveTasks(tasks []models.Task) error {
	return s.putJSON(tasksKey, tasks)
}

// CachedTasks returns the last saved snapshot. ok is false when nothing has
// been cached yet.
func (s *Store) CachedTasks() (tasks []models.Task, ok bool, err error) {
	ok, err = s.getJSON(tasksKey, &tasks)
	return tasks, ok, err
}

func (s *Store) SaveStats(stats models.TaskStats) error {
	return s.putJSON(statsKey, stats)
}

func (s *Store) CachedStats() (stats models.TaskStats, ok bool, err error) {
	ok, err = s.getJSON(statsKey, &stats)
	return stats, ok, err
}

func (s *Store) putJSON(key []byte, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(cacheBucket).Put(key, payload)
	})
}

func (s *Store) getJSON(key []byte, v any) (bool, error) {
	var payload []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(cacheBucket).Get(key); raw != nil {
			payload = append(payload, raw...)
		}
		return nil
	}); err != nil {
		return false, err
	}
	if payload == nil {
		return false, nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, err
	}
	return true, nil
}
