package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml"
)

// Settings contains the tunables read from the settings file.
type Settings struct {
	Debug struct {
		// Assertions enables precondition checks that panic on caller
		// misuse, such as an occupancy listener re-entering the tracker.
		Assertions bool
	}
	Stats struct {
		// Digest enables the footprint digest in periodic summaries.
		Digest bool
	}
	Harness struct {
		// QueueBuffer is the submission buffer of the grid's serial queue.
		QueueBuffer int
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	settings := Settings{}
	settings.Debug.Assertions = false
	settings.Stats.Digest = true
	settings.Harness.QueueBuffer = 64
	return settings
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	var settings Settings
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	return settings, nil
}
