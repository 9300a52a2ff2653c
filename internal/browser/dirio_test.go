package browser

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSplitVolume(t *testing.T) {
	tests := []struct {
		path     string
		wantVol  string
		wantRest string
		wantOK   bool
	}{
		{"sdmc:/roms", "sdmc", "roms", true},
		{"sdmc:/roms/games", "sdmc", "roms/games", true},
		{"sdmc:/", "sdmc", "", true},
		{"/plain/path", "", "", false},
		{":/broken", "", "", false},
		{"relative", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		vol, rest, ok := SplitVolume(tt.path)
		if vol != tt.wantVol || rest != tt.wantRest || ok != tt.wantOK {
			t.Errorf("SplitVolume(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.path, vol, rest, ok, tt.wantVol, tt.wantRest, tt.wantOK)
		}
	}
}

func TestOSReaderResolve(t *testing.T) {
	r := NewOSReader(map[string]string{"sdmc": "/mnt/sd"})

	tests := []struct {
		path string
		want string
	}{
		{"sdmc:/", "/mnt/sd"},
		{"sdmc:/roms", "/mnt/sd/roms"},
		{"sdmc:/roms/games", "/mnt/sd/roms/games"},
		{"/plain/path", "/plain/path"},
	}
	for _, tt := range tests {
		got, err := r.Resolve(tt.path)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}

	if _, err := r.Resolve("cart:/x"); !IsNotExist(err) {
		t.Errorf("unknown volume = %v, want not-exist", err)
	}
}

func TestOSReaderReadBatches(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.gba", "b.gba", "c.txt"} {
		mustWriteFile(t, filepath.Join(root, name), "x")
	}
	if err := os.Mkdir(filepath.Join(root, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := NewOSReader(nil)
	d, err := r.OpenDir(root)
	if err != nil {
		t.Fatalf("OpenDir() failed: %v", err)
	}
	defer d.Close()

	seen := map[string]bool{}
	var dirSeen bool
	for {
		batch, err := d.ReadBatch(2)
		for _, e := range batch {
			seen[e.Name] = true
			if e.Name == "sub" && e.IsDir {
				dirSeen = true
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("ReadBatch() failed: %v", err)
		}
		if len(batch) > 2 {
			t.Fatalf("batch of %d entries exceeds requested max", len(batch))
		}
	}

	if len(seen) != 4 {
		t.Errorf("saw %d entries, want 4: %v", len(seen), seen)
	}
	if !dirSeen {
		t.Error("subdirectory not reported as directory")
	}
}

func TestOSReaderMissingPath(t *testing.T) {
	r := NewOSReader(nil)
	if _, err := r.OpenDir(filepath.Join(t.TempDir(), "missing")); !IsNotExist(err) {
		t.Errorf("OpenDir(missing) = %v, want not-exist", err)
	}
}
