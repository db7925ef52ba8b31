package render

import "github.com/charmbracelet/x/ansi"

// The helpers below are the only way the renderer touches the terminal, so
// r.cur always matches the real cursor.

func (r *Renderer) write(s string) error {
	if s == "" {
		return nil
	}
	if err := r.term.Write(s); err != nil {
		return wrap("write", err)
	}
	r.cur.Col += ansi.StringWidth(s)
	if r.width > 0 {
		r.cur.Col = min(r.cur.Col, r.width-1)
	}
	return nil
}

func (r *Renderer) newline() error {
	if err := r.term.Write("\r\n"); err != nil {
		return wrap("write", err)
	}
	r.cur = Cell{Row: r.cur.Row + 1}
	return nil
}

func (r *Renderer) clearLine() error {
	return wrap("clear line", r.term.ClearLine())
}

func (r *Renderer) clearToEnd() error {
	return wrap("clear to end", r.term.ClearToEnd())
}

func (r *Renderer) moveTo(c Cell) error {
	switch dy := c.Row - r.cur.Row; {
	case dy > 0:
		if err := r.term.MoveDown(dy); err != nil {
			return wrap("move", err)
		}
	case dy < 0:
		if err := r.term.MoveUp(-dy); err != nil {
			return wrap("move", err)
		}
	}
	r.cur.Row = c.Row

	if err := r.moveToColumn(c.Col); err != nil {
		return err
	}
	return nil
}

func (r *Renderer) moveToColumn(col int) error {
	var err error
	switch dx := col - r.cur.Col; {
	case dx == 0:
		return nil
	case col == 0:
		err = r.term.MoveToColumn(0)
	case dx > 0:
		err = r.term.MoveRight(dx)
	default:
		err = r.term.MoveLeft(-dx)
	}
	if err != nil {
		return wrap("move", err)
	}
	r.cur.Col = col
	return nil
}
