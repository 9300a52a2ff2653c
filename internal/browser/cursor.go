package browser

// cursor tracks the selected row and the first visible row of a paged
// listing. Movement wraps at both ends; the window follows the cursor.
type cursor struct {
	pos    int
	offset int
}

func (c *cursor) reset() {
	c.pos = 0
	c.offset = 0
}

// step moves the cursor by delta rows, wrapping past either end.
func (c *cursor) step(delta, size, pageSize int) {
	if size == 0 {
		return
	}
	c.pos += delta
	c.wrap(size)
	c.follow(size, pageSize)
}

// pageForward advances one page, clamping to the last row on overflow.
func (c *cursor) pageForward(size, pageSize int) {
	if size == 0 {
		return
	}
	c.pos += pageSize
	if c.pos > size-1 {
		c.pos = size - 1
	}
	c.wrap(size)
	c.follow(size, pageSize)
}

// pageBackward retreats one page, flooring at -1 so the wrap lands on the
// last row when the move started inside the first page.
func (c *cursor) pageBackward(size, pageSize int) {
	if size == 0 {
		return
	}
	c.pos -= pageSize
	if c.pos < -1 {
		c.pos = -1
	}
	c.wrap(size)
	c.follow(size, pageSize)
}

func (c *cursor) wrap(size int) {
	if c.pos < 0 {
		c.pos = size - 1
	}
	if c.pos > size-1 {
		c.pos = 0
	}
}

// follow recomputes the window start so the cursor stays inside the page.
func (c *cursor) follow(size, pageSize int) {
	if pageSize <= 0 || size == 0 {
		return
	}
	if c.pos < c.offset {
		c.offset = c.pos
	}
	if c.pos >= c.offset+pageSize {
		c.offset = c.pos - (pageSize - 1)
	}
}

// clampWindow pulls the window start back into range after the page size
// changed, then lets follow settle the cursor inside it.
func (c *cursor) clampWindow(size, pageSize int) {
	if pageSize <= 0 || size == 0 {
		c.offset = 0
		return
	}
	maxOffset := size - pageSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	c.follow(size, pageSize)
}

// visibleRange returns the window as [start, end) indices.
func (c *cursor) visibleRange(size, pageSize int) (start, end int) {
	if size == 0 || pageSize <= 0 {
		return 0, 0
	}
	end = c.offset + pageSize
	if end > size {
		end = size
	}
	return c.offset, end
}
