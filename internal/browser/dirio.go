package browser

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirEntry is one raw entry from the directory-read service, before
// filtering and admission.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Dir is an open directory streaming entries in bounded batches. ReadBatch
// returns up to max entries and io.EOF once the directory is exhausted,
// matching the os.File.ReadDir contract.
type Dir interface {
	ReadBatch(max int) ([]DirEntry, error)
	Close() error
}

// DirReader opens directories for scanning. Missing paths surface as errors
// satisfying errors.Is(err, fs.ErrNotExist).
type DirReader interface {
	OpenDir(path string) (Dir, error)
}

// OSReader reads directories from the host filesystem. Paths carrying a
// volume prefix ("sdmc:/roms") are resolved through the volume table; plain
// paths pass through unchanged.
type OSReader struct {
	volumes map[string]string
}

// NewOSReader builds a reader over the given volume table. The table may be
// nil or empty when only plain paths are browsed.
func NewOSReader(volumes map[string]string) *OSReader {
	vols := make(map[string]string, len(volumes))
	for name, dir := range volumes {
		vols[name] = dir
	}
	return &OSReader{volumes: vols}
}

// Resolve maps a browser path to a host path. Unknown volumes report
// fs.ErrNotExist.
func (r *OSReader) Resolve(path string) (string, error) {
	vol, rest, ok := SplitVolume(path)
	if !ok {
		return path, nil
	}
	dir, found := r.volumes[vol]
	if !found {
		return "", fmt.Errorf("volume %q: %w", vol, fs.ErrNotExist)
	}
	if rest == "" {
		return dir, nil
	}
	return filepath.Join(dir, rest), nil
}

// OpenDir implements DirReader.
func (r *OSReader) OpenDir(path string) (Dir, error) {
	host, err := r.Resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(host)
	if err != nil {
		return nil, err
	}
	return osDir{f}, nil
}

type osDir struct {
	f *os.File
}

func (d osDir) ReadBatch(max int) ([]DirEntry, error) {
	ents, err := d.f.ReadDir(max)
	out := make([]DirEntry, 0, len(ents))
	for _, e := range ents {
		out = append(out, DirEntry{Name: e.Name(), IsDir: e.IsDir()})
	}
	return out, err
}

func (d osDir) Close() error {
	return d.f.Close()
}

// SplitVolume splits "sdmc:/roms" into ("sdmc", "roms", true). A volume
// prefix is a non-empty name ending in ':' immediately followed by '/'.
// Paths without one report ok == false.
func SplitVolume(path string) (vol, rest string, ok bool) {
	i := strings.Index(path, ":/")
	if i <= 0 {
		return "", "", false
	}
	return path[:i], path[i+2:], true
}
