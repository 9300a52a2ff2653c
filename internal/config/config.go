package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	// Root is the directory the browser starts in when no remembered
	// directory applies. Empty means the current working directory. It may
	// be a plain path or a volume path like "sdmc:/".
	Root string `koanf:"root"`

	// RomExtension is the file suffix shown in the browser.
	RomExtension string `koanf:"rom_extension"`

	// AutobootRom skips the browser and boots this path directly when set.
	AutobootRom string `koanf:"autoboot_rom"`

	// Icons selects the entry decoration style: "nerd", "unicode" or "none".
	Icons string `koanf:"icons"`

	// MemoryBudget caps the bytes the browse session may hold, 0 for the
	// built-in default.
	MemoryBudget int `koanf:"memory_budget"`

	// Volumes maps volume prefixes to host directories, so flashcart-style
	// paths like "sdmc:/roms" browse real trees.
	Volumes map[string]string `koanf:"volumes"`

	Saves SavesConfig `koanf:"saves"`
	Log   LogConfig   `koanf:"log"`
}

// SavesConfig controls where save files and per-game configs live.
type SavesConfig struct {
	// UseSavesDir collects saves in one directory instead of next to each
	// ROM.
	UseSavesDir bool `koanf:"use_saves_dir"`
	// Dir is the saves directory; empty means "saves" under the browse
	// root.
	Dir string `koanf:"dir"`
	// Slot selects the save file, 0 through 9.
	Slot uint8 `koanf:"slot"`
}

// LogConfig controls the log file. The terminal belongs to the UI, so logs
// never go there.
type LogConfig struct {
	Level string `koanf:"level"`
	Path  string `koanf:"path"` // empty means the XDG state dir
}

func Load() (*Config, error) {
	return loadPaths(getConfigPaths())
}

func loadPaths(configPaths []string) (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := defaults()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.expand()
	return cfg, nil
}

// LoadGameOverlay layers a per-game config file over base, following the
// two-phase scheme: global settings first, the game's own file on top once
// a ROM is picked. Only keys present in the file override. A missing file
// is normal and returns base unchanged.
func LoadGameOverlay(base *Config, path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return base, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}

	merged := *base
	merged.Volumes = make(map[string]string, len(base.Volumes))
	for name, dir := range base.Volumes {
		merged.Volumes[name] = dir
	}
	if err := k.Unmarshal("", &merged); err != nil {
		return nil, err
	}
	merged.expand()
	return &merged, nil
}

func defaults() *Config {
	return &Config{
		RomExtension: ".gba",
		Icons:        "none",
		Saves: SavesConfig{
			UseSavesDir: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) expand() {
	c.Root = expandPath(c.Root)
	c.AutobootRom = expandPath(c.AutobootRom)
	c.Saves.Dir = expandPath(c.Saves.Dir)
	c.Log.Path = expandPath(c.Log.Path)
	for name, dir := range c.Volumes {
		c.Volumes[name] = expandPath(dir)
	}
	c.RomExtension = strings.TrimSpace(c.RomExtension)
}

// SavesDirFor resolves the saves directory against the effective browse
// root. An explicit saves.dir wins; otherwise it is "saves" under the root.
func (c *Config) SavesDirFor(root string) string {
	if c.Saves.Dir != "" {
		return c.Saves.Dir
	}
	if strings.HasSuffix(root, "/") {
		return root + "saves"
	}
	return root + "/saves"
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/rompick/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rompick", "config.toml"))
	}

	// 2. ./rompick.toml (pwd, highest priority)
	paths = append(paths, "rompick.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
