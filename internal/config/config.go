package config

import (
	"errors"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "taskpad.db"

	// StorageSQLite keeps both slots in one SQLite database file.
	StorageSQLite = "sqlite"
	// StorageFiles keeps each slot in its own file under data_dir.
	StorageFiles = "files"
)

type Keymap struct {
	Quit    string `toml:"quit"`
	Add     string `toml:"add"`
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Toggle  string `toml:"toggle"`
	Delete  string `toml:"delete"`
	Confirm string `toml:"confirm"`
	Cancel  string `toml:"cancel"`
	Filter  string `toml:"filter"`
	Clear   string `toml:"clear_completed"`
	Export  string `toml:"export"`
	Theme   string `toml:"theme"`
}

type Config struct {
	Storage       string `toml:"storage"`
	DBPath        string `toml:"db_path"`
	DataDir       string `toml:"data_dir"`
	ExportDir     string `toml:"export_dir"`
	DefaultFilter string `toml:"default_filter"`
	Keys          Keymap `toml:"keys"`
}

// ResolveConfigPath places the config under the user's home directory,
// falling back to the working directory when home cannot be resolved.
func ResolveConfigPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(home, ".config", "taskpad", DefaultConfigFileName)
}

// LoadOrCreate reads the config, writing the defaults on first launch.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return expand(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Storage == "" {
		cfg.Storage = StorageSQLite
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultConfig().DBPath
	}
	if cfg.DataDir == "" {
		cfg.DataDir = defaultConfig().DataDir
	}
	return expand(cfg)
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// expand resolves ~ in the configured paths.
func expand(cfg Config) (Config, error) {
	var err error
	if cfg.DBPath, err = homedir.Expand(cfg.DBPath); err != nil {
		return cfg, err
	}
	if cfg.DataDir, err = homedir.Expand(cfg.DataDir); err != nil {
		return cfg, err
	}
	if cfg.ExportDir, err = homedir.Expand(cfg.ExportDir); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Storage:       StorageSQLite,
		DBPath:        filepath.Join("~", ".local", "share", "taskpad", DefaultDBName),
		DataDir:       filepath.Join("~", ".local", "share", "taskpad", "data"),
		ExportDir:     ".",
		DefaultFilter: "all",
		Keys: Keymap{
			Quit:    "q",
			Add:     "a",
			Up:      "k",
			Down:    "j",
			Toggle:  " ",
			Delete:  "d",
			Confirm: "enter",
			Cancel:  "esc",
			Filter:  "f",
			Clear:   "c",
			Export:  "x",
			Theme:   "t",
		},
	}
}
