// Package boltdb opens the local state file and stores JSON blobs under fixed keys.
package boltdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

// BucketState holds every persisted blob (catalog, sync config).
const BucketState = "state"

var ErrKeyNotFound = errors.New("key not found")

// Open opens (or creates) the bolt file at path and ensures the state bucket exists.
func Open(path string) (*bbolt.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create state dir: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketState))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create bucket %s: %w", BucketState, err)
	}

	return db, nil
}

// GetRaw returns a copy of the bytes stored under key.
func GetRaw(db *bbolt.DB, key string) ([]byte, error) {
	var out []byte
	err := db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketState))
		if b == nil {
			return ErrKeyNotFound
		}
		v := b.Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		// v is only valid for the life of the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

// GetJSON decodes the blob under key into v.
func GetJSON(db *bbolt.DB, key string, v any) error {
	raw, err := GetRaw(db, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// PutJSON encodes v and stores it under key.
func PutJSON(db *bbolt.DB, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return PutRaw(db, key, data)
}

// PutRaw stores data under key.
func PutRaw(db *bbolt.DB, key string, data []byte) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketState))
		if err != nil {
			return err
		}
		return b.Put([]byte(key), data)
	})
}

// Delete removes key. Deleting a missing key is not an error.
func Delete(db *bbolt.DB, key string) error {
	return db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketState))
		if b == nil {
			return nil
		}
		return b.Delete([]byte(key))
	})
}
