package render

import (
	"image"
	"image/color"
)

// CommandKind identifies a recorded draw call.
type CommandKind int

const (
	CmdLine CommandKind = iota
	CmdFill
)

// Command is a single recorded draw call.
type Command struct {
	Kind   CommandKind
	From   image.Point   // CmdLine only
	To     image.Point   // CmdLine only
	Width  float32       // CmdLine only
	Points []image.Point // CmdFill only
	Color  color.NRGBA
}

// DrawList records draw calls so a frame can be built once and replayed onto
// any backend. It implements Surface.
type DrawList struct {
	Commands []Command
}

// StrokeLine records a line segment.
func (d *DrawList) StrokeLine(from, to image.Point, width float32, clr color.Color) {
	d.Commands = append(d.Commands, Command{
		Kind:  CmdLine,
		From:  from,
		To:    to,
		Width: width,
		Color: color.NRGBAModel.Convert(clr).(color.NRGBA),
	})
}

// FillPolygon records a polygon fill. The points are copied.
func (d *DrawList) FillPolygon(points []image.Point, clr color.Color) {
	d.Commands = append(d.Commands, Command{
		Kind:   CmdFill,
		Points: append([]image.Point(nil), points...),
		Color:  color.NRGBAModel.Convert(clr).(color.NRGBA),
	})
}

// Replay issues every recorded command, in order, to dst.
func (d *DrawList) Replay(dst Surface) {
	for _, c := range d.Commands {
		switch c.Kind {
		case CmdLine:
			dst.StrokeLine(c.From, c.To, c.Width, c.Color)
		case CmdFill:
			dst.FillPolygon(c.Points, c.Color)
		}
	}
}

// Count returns how many commands of the given kind were recorded.
func (d *DrawList) Count(kind CommandKind) int {
	n := 0
	for _, c := range d.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of recorded commands.
func (d *DrawList) Len() int {
	return len(d.Commands)
}

// Reset drops all recorded commands, keeping the backing storage.
func (d *DrawList) Reset() {
	d.Commands = d.Commands[:0]
}
