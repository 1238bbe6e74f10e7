package clientstore

import (
	"encoding/json"
	"errors"
	"os"
)

// Stores survive restarts the way a browser's localStorage would: one
// JSON file per store.

// Save writes the store to path with 0600 permissions, since the auth
// store carries tokens.
func Save(path string, store interface{}) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Load reads a store back; a missing file leaves the store zero-valued.
func Load(path string, store interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, store)
}
