package browser

import (
	"errors"
	"testing"

	"github.com/rompick/rompick/internal/mem"
)

func newTestPath(t *testing.T, base string) (*PathBuilder, *mem.Budget) {
	t.Helper()
	budget := mem.NewBudget(0)
	p, err := newPathBuilder(budget, base)
	if err != nil {
		t.Fatalf("newPathBuilder(%q) failed: %v", base, err)
	}
	return p, budget
}

func TestPathRoundTrip(t *testing.T) {
	p, _ := newTestPath(t, "sdmc:/")
	defer p.Destroy()

	if err := p.Append("games"); err != nil {
		t.Fatalf("Append(games) failed: %v", err)
	}
	if got := p.String(); got != "sdmc:/games" {
		t.Fatalf("path = %q, want %q", got, "sdmc:/games")
	}

	if err := p.Append("roms"); err != nil {
		t.Fatalf("Append(roms) failed: %v", err)
	}
	if got := p.String(); got != "sdmc:/games/roms" {
		t.Fatalf("path = %q, want %q", got, "sdmc:/games/roms")
	}

	p.TruncateToParent()
	if got := p.String(); got != "sdmc:/games" {
		t.Fatalf("path after truncate = %q, want %q", got, "sdmc:/games")
	}

	p.TruncateToParent()
	if got := p.String(); got != "sdmc:/" {
		t.Fatalf("path after truncate = %q, want %q", got, "sdmc:/")
	}

	// Truncating at the volume root is a no-op.
	p.TruncateToParent()
	if got := p.String(); got != "sdmc:/" {
		t.Fatalf("path after root truncate = %q, want %q", got, "sdmc:/")
	}
}

func TestPathPlainRoot(t *testing.T) {
	p, _ := newTestPath(t, "/")
	defer p.Destroy()

	if err := p.Append("home"); err != nil {
		t.Fatalf("Append(home) failed: %v", err)
	}
	if got := p.String(); got != "/home" {
		t.Fatalf("path = %q, want %q", got, "/home")
	}

	p.TruncateToParent()
	if got := p.String(); got != "/" {
		t.Fatalf("path = %q, want %q", got, "/")
	}

	p.TruncateToParent()
	if got := p.String(); got != "/" {
		t.Fatalf("path after root truncate = %q, want %q", got, "/")
	}
}

func TestPathTruncateWithoutSeparator(t *testing.T) {
	p, _ := newTestPath(t, "sdmc:")
	defer p.Destroy()

	p.TruncateToParent()
	if got := p.String(); got != "sdmc:" {
		t.Fatalf("path = %q, want %q", got, "sdmc:")
	}
}

func TestPathAppendInvalidComponents(t *testing.T) {
	p, budget := newTestPath(t, "sdmc:/")
	defer p.Destroy()
	before := budget.Used()

	for _, component := range []string{"", "a/b", "/"} {
		if err := p.Append(component); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Append(%q) = %v, want ErrInvalidArgument", component, err)
		}
	}
	if got := p.String(); got != "sdmc:/" {
		t.Errorf("path mutated to %q by invalid appends", got)
	}
	if used := budget.Used(); used != before {
		t.Errorf("budget changed by invalid appends: %d -> %d", before, used)
	}
}

func TestPathChargeFollowsCapacity(t *testing.T) {
	p, budget := newTestPath(t, "sdmc:/")

	if used := budget.Used(); used != len("sdmc:/") {
		t.Fatalf("initial charge = %d, want %d", used, len("sdmc:/"))
	}

	if err := p.Append("games"); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if used := budget.Used(); used != len("sdmc:/games") {
		t.Errorf("charge after append = %d, want %d", used, len("sdmc:/games"))
	}

	// Truncation keeps the capacity and with it the charge.
	p.TruncateToParent()
	if used := budget.Used(); used != len("sdmc:/games") {
		t.Errorf("charge after truncate = %d, want %d", used, len("sdmc:/games"))
	}

	p.Destroy()
	if used := budget.Used(); used != 0 {
		t.Errorf("charge after destroy = %d, want 0", used)
	}

	p.Destroy()
	if used := budget.Used(); used != 0 {
		t.Errorf("charge after double destroy = %d, want 0", used)
	}
}

func TestPathAppendOutOfMemory(t *testing.T) {
	budget := mem.NewBudget(len("sdmc:/") + 3)
	p, err := newPathBuilder(budget, "sdmc:/")
	if err != nil {
		t.Fatalf("newPathBuilder() failed: %v", err)
	}

	if err := p.Append("longdirectoryname"); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("Append() = %v, want ErrOutOfMemory", err)
	}
	if got := p.String(); got != "" {
		t.Errorf("destroyed builder reads %q, want empty", got)
	}
	if used := budget.Used(); used != 0 {
		t.Errorf("budget used = %d, want 0", used)
	}
	if err := p.Append("late"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Append after destroy = %v, want ErrInvalidArgument", err)
	}
}

func TestPathSeparatorInsertion(t *testing.T) {
	tests := []struct {
		base      string
		component string
		want      string
	}{
		{"sdmc:/", "games", "sdmc:/games"},
		{"sdmc:/games", "roms", "sdmc:/games/roms"},
		{"/", "etc", "/etc"},
		{"/usr", "lib", "/usr/lib"},
	}
	for _, tt := range tests {
		p, _ := newTestPath(t, tt.base)
		if err := p.Append(tt.component); err != nil {
			t.Errorf("Append(%q, %q) failed: %v", tt.base, tt.component, err)
			p.Destroy()
			continue
		}
		if got := p.String(); got != tt.want {
			t.Errorf("Append(%q, %q) = %q, want %q", tt.base, tt.component, got, tt.want)
		}
		p.Destroy()
	}
}

func TestNewPathBuilderInvalid(t *testing.T) {
	budget := mem.NewBudget(0)
	if _, err := newPathBuilder(budget, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty path = %v, want ErrInvalidArgument", err)
	}
	if _, err := newPathBuilder(nil, "sdmc:/"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil budget = %v, want ErrInvalidArgument", err)
	}
}
