// Package prefs handles FilmFinder user preferences persistence.
// Preferences live in the "prefs" slot of the key-value store.
package prefs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/filmfinder/internal/kv"
)

// Prefs holds user preferences for FilmFinder.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	// SlotKey names the persisted slot.
	SlotKey = "prefs"

	defaultTheme = "Nightfox"
)

// Default returns the preferences used when nothing has been saved.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from store, falling back to defaults if the slot is
// missing or unreadable.
func Load(store kv.Store) Prefs {
	prefs := Default()
	if store == nil {
		return prefs
	}

	var saved Prefs
	if err := store.Get(SlotKey, &saved); err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return prefs
		}
		return prefs // Graceful degradation
	}

	if strings.TrimSpace(saved.Theme) != "" {
		prefs.Theme = strings.TrimSpace(saved.Theme)
	}
	return prefs
}

// Save writes preferences to store.
func Save(store kv.Store, p Prefs) error {
	if store == nil {
		return fmt.Errorf("save prefs: no store")
	}
	if err := store.Put(SlotKey, p); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}
