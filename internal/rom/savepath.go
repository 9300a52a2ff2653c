package rom

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// configExt is the extension of per-game config files.
const configExt = ".toml"

// ErrBadSaveSlot reports a save slot outside the 0-9 range.
var ErrBadSaveSlot = errors.New("save slot out of range")

// GameConfigPath derives the per-game config path for a ROM: the ROM name
// with its extension swapped for ".toml". With useSavesDir the file lives
// under savesDir, otherwise next to the ROM.
func GameConfigPath(romPath string, useSavesDir bool, savesDir string) string {
	if useSavesDir {
		name := romPath[strings.LastIndexByte(romPath, '/')+1:]
		return joinBrowserPath(savesDir, swapExt(name, configExt))
	}
	return swapExt(romPath, configExt)
}

// SavePath derives the save file path from a game config path. Slot 0 keeps
// the plain ".sav" extension; slots 1 through 9 insert the slot number as
// ".<slot>.sav". Higher slots are invalid, never a usable path.
func SavePath(cfgPath string, slot uint8) (string, error) {
	if slot > 9 {
		return "", fmt.Errorf("slot %d: %w", slot, ErrBadSaveSlot)
	}
	ext := ".sav"
	if slot != 0 {
		ext = fmt.Sprintf(".%d.sav", slot)
	}
	return swapExt(cfgPath, ext), nil
}

// swapExt replaces the final extension of p, or appends when p has none.
func swapExt(p, newExt string) string {
	return strings.TrimSuffix(p, path.Ext(p)) + newExt
}

// joinBrowserPath joins a directory and a name with a single separator,
// tolerating directories that already end in one (volume roots do).
func joinBrowserPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}
