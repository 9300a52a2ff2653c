package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/rompick/rompick/internal/app"
	"github.com/rompick/rompick/internal/browser"
	"github.com/rompick/rompick/internal/config"
	"github.com/rompick/rompick/internal/errmsg"
	"github.com/rompick/rompick/internal/icons"
	"github.com/rompick/rompick/internal/logging"
	"github.com/rompick/rompick/internal/mem"
	"github.com/rompick/rompick/internal/rom"
	"github.com/rompick/rompick/internal/state"
)

// defaultPageSize is the listing height before the first terminal resize
// message arrives: a 24-row screen minus one header row.
const defaultPageSize = 23

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	if err := logging.Init(logging.Config{Level: cfg.Log.Level, Path: cfg.Log.Path}); err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logging.Sync() //nolint:errcheck // exiting, nowhere left to report

	icons.Init(cfg.Icons)

	stateMgr, err := state.Open()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer stateMgr.Close()

	reader := browser.NewOSReader(cfg.Volumes)

	// Autoboot skips the browser entirely.
	if cfg.AutobootRom != "" {
		logging.Info("autobooting", zap.String("rom", cfg.AutobootRom))
		return launch(cfg, reader, stateMgr, cfg.AutobootRom, parentOf(cfg.AutobootRom))
	}

	sel, err := browse(cfg, reader, stateMgr)
	if err != nil {
		return err
	}
	if sel == nil {
		return nil // quit without picking
	}
	defer sel.Path.Destroy()

	return launch(cfg, reader, stateMgr, sel.Path.String(), sel.LastDir)
}

// browse runs the interactive session and returns the selection, nil when the
// user quit without picking.
func browse(cfg *config.Config, reader *browser.OSReader, stateMgr *state.Manager) (*browser.Selection, error) {
	limit := cfg.MemoryBudget
	if limit <= 0 {
		limit = mem.DefaultLimit
	}
	scanner, err := browser.NewScanner(reader, mem.NewBudget(limit))
	if err != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	// Start where the last session ended, then the configured root, then the
	// working directory.
	fallback := cfg.Root
	if fallback == "" {
		if fallback, err = os.Getwd(); err != nil {
			return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
		}
	}
	startPath := fallback
	var savedSelection string
	if nav, err := stateMgr.GetNavigation(); err == nil && nav != nil && nav.LastDir != "" {
		startPath = nav.LastDir
		savedSelection = nav.SelectedName
	}

	path := startPath
	session, err := browser.NewSession(scanner, path, cfg.RomExtension, defaultPageSize)
	if browser.IsNotExist(err) && startPath != fallback {
		// The remembered directory is gone; retry once from the root.
		logging.Warn("saved directory missing, falling back",
			zap.String("path", startPath), zap.String("fallback", fallback))
		savedSelection = ""
		path = fallback
		session, err = browser.NewSession(scanner, path, cfg.RomExtension, defaultPageSize)
	}
	if err != nil {
		return nil, errors.New(errmsg.FormatWith(errmsg.OpDirScan, path, err))
	}

	if savedSelection != "" {
		session.FocusName(savedSelection)
	}

	finalModel, err := tea.NewProgram(app.New(session, stateMgr), tea.WithAltScreen()).Run()
	if err != nil {
		session.Close()
		return nil, errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}

	final := finalModel.(app.Model)
	if final.Err() != nil {
		return nil, errors.New(errmsg.Format(errmsg.OpDirScan, final.Err()))
	}
	return final.Selection(), nil
}

// launch validates the picked ROM, overlays its per-game config, derives the
// save path, and records the launch. The printed lines are the hand-off to
// whatever boots the game.
func launch(cfg *config.Config, reader *browser.OSReader, stateMgr *state.Manager, romPath, lastDir string) error {
	host, err := reader.Resolve(romPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpRomLoad, romPath, err))
	}
	img, err := rom.Load(host)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpRomLoad, romPath, err))
	}
	logging.Info("rom loaded",
		zap.String("path", romPath),
		zap.Int("size", img.FileSize),
		zap.Int("padded", img.PaddedSize),
		zap.Bool("mirrored", img.Mirrored()))
	if img.Truncated {
		logging.Warn("rom exceeds the cart address space", zap.String("path", romPath))
		fmt.Fprintf(os.Stderr, "warning: %s exceeds %s and was truncated\n",
			romPath, humanize.IBytes(rom.MaxSize))
	}

	// Two-phase configuration: the per-game file, when present, overlays the
	// global settings before the save path is derived.
	savesDir := cfg.SavesDirFor(savesRoot(cfg, lastDir))
	gameCfgPath := rom.GameConfigPath(romPath, cfg.Saves.UseSavesDir, savesDir)
	gameCfgHost, err := reader.Resolve(gameCfgPath)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpConfigOverlay, gameCfgPath, err))
	}
	eff, err := config.LoadGameOverlay(cfg, gameCfgHost)
	if err != nil {
		return errors.New(errmsg.FormatWith(errmsg.OpConfigOverlay, gameCfgPath, err))
	}

	savePath, err := rom.SavePath(gameCfgPath, eff.Saves.Slot)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpSavePath, err))
	}

	nav := state.NavigationState{LastDir: lastDir, SelectedName: baseName(romPath)}
	if err := stateMgr.RecordLaunch(nav, romPath, int64(img.FileSize)); err != nil {
		// A failed history write must not block the launch.
		logging.Error("launch record failed", zap.Error(err))
	}

	fmt.Printf("rom:  %s (%s)\n", romPath, img)
	fmt.Printf("save: %s (slot %d)\n", savePath, eff.Saves.Slot)
	return nil
}

// savesRoot anchors the default saves directory: the configured root when
// set, otherwise the directory the ROM was picked from.
func savesRoot(cfg *config.Config, lastDir string) string {
	if cfg.Root != "" {
		return cfg.Root
	}
	return lastDir
}

// baseName returns the final component of a browser path.
func baseName(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}

// parentOf returns the directory holding a browser path, keeping volume
// roots intact: parentOf("sdmc:/games/a.gba") is "sdmc:/games", and
// parentOf("sdmc:/a.gba") is "sdmc:/".
func parentOf(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	if i == 0 || path[i-1] == ':' {
		return path[:i+1]
	}
	return path[:i]
}
