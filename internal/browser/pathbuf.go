package browser

import (
	"bytes"
	"strings"

	"github.com/rompick/rompick/internal/mem"
)

// PathBuilder is an owning path buffer mutated by Append and
// TruncateToParent. The buffer bytes are charged against a budget; the
// charge is returned by Destroy, or becomes the caller's to return when the
// builder is handed over inside a Selection.
type PathBuilder struct {
	budget    *mem.Budget
	buf       []byte
	destroyed bool
}

func newPathBuilder(budget *mem.Budget, path string) (*PathBuilder, error) {
	if budget == nil || path == "" {
		return nil, ErrInvalidArgument
	}
	if err := budget.Reserve(len(path)); err != nil {
		return nil, err
	}
	b := &PathBuilder{budget: budget, buf: make([]byte, 0, len(path))}
	b.buf = append(b.buf, path...)
	return b, nil
}

// Append adds one path component, inserting a separator unless the path
// already ends with one. Components must be non-empty and free of
// separators. A failed reservation destroys the builder; the path is never
// left partially written.
func (p *PathBuilder) Append(component string) error {
	if p == nil || p.destroyed {
		return ErrInvalidArgument
	}
	if component == "" || strings.ContainsRune(component, '/') {
		return ErrInvalidArgument
	}
	need := len(p.buf) + len(component)
	addSlash := p.buf[len(p.buf)-1] != '/'
	if addSlash {
		need++
	}
	if need > cap(p.buf) {
		if err := p.budget.Reserve(need); err != nil {
			p.Destroy()
			return err
		}
		grown := make([]byte, len(p.buf), need)
		copy(grown, p.buf)
		p.budget.Release(cap(p.buf))
		p.buf = grown
	}
	if addSlash {
		p.buf = append(p.buf, '/')
	}
	p.buf = append(p.buf, component...)
	return nil
}

// TruncateToParent drops the last path component. The separator ending a
// filesystem root is kept: a volume root like "sdmc:/" and the bare root "/"
// truncate to themselves. The buffer capacity, and with it the charge, is
// retained.
func (p *PathBuilder) TruncateToParent() {
	if p == nil || p.destroyed {
		return
	}
	i := bytes.LastIndexByte(p.buf, '/')
	if i < 0 {
		return
	}
	if i == 0 || p.buf[i-1] == ':' {
		i++ // the separator belongs to the root
	}
	p.buf = p.buf[:i]
}

// String returns the current path. Destroyed builders read as empty.
func (p *PathBuilder) String() string {
	if p == nil || p.destroyed {
		return ""
	}
	return string(p.buf)
}

// Cap returns the charged buffer capacity.
func (p *PathBuilder) Cap() int {
	if p == nil || p.destroyed {
		return 0
	}
	return cap(p.buf)
}

// Destroy releases the buffer charge. It is safe on nil builders and after
// a previous Destroy.
func (p *PathBuilder) Destroy() {
	if p == nil || p.destroyed {
		return
	}
	p.destroyed = true
	p.budget.Release(cap(p.buf))
	p.buf = nil
}
