package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ukaji3/gridview-go/pkg/gridview"
	"github.com/ukaji3/gridview-go/pkg/gridview/models"
)

// WheelStep is the number of rows one wheel notch scrolls.
const WheelStep = 3

var navKeys = map[tcell.Key]gridview.Key{
	tcell.KeyUp:    gridview.KeyUp,
	tcell.KeyDown:  gridview.KeyDown,
	tcell.KeyLeft:  gridview.KeyLeft,
	tcell.KeyRight: gridview.KeyRight,
	tcell.KeyHome:  gridview.KeyHome,
	tcell.KeyPgUp:  gridview.KeyPageUp,
	tcell.KeyPgDn:  gridview.KeyPageDown,
	tcell.KeyEnter: gridview.KeyReturn,
	tcell.KeyTab:   gridview.KeyTab,
}

// Input translates tcell key, mouse and interrupt events into engine
// gestures.
type Input struct {
	e       *gridview.Engine
	pressed bool
}

// NewInput creates an input translator for e.
func NewInput(e *gridview.Engine) *Input {
	return &Input{e: e}
}

// Handle applies ev and reports whether it was consumed.
func (in *Input) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventMouse:
		return in.mouse(ev)
	case *tcell.EventInterrupt:
		if fn, ok := ev.Data().(func()); ok {
			fn()
			return true
		}
	}
	return false
}

func (in *Input) key(ev *tcell.EventKey) bool {
	mods := modifiers(ev.Modifiers())
	if ev.Key() == tcell.KeyBacktab {
		in.e.KeyPress(gridview.KeyTab, mods|gridview.ModShift)
		return true
	}
	k, ok := navKeys[ev.Key()]
	if !ok {
		return false
	}
	in.e.KeyPress(k, mods)
	return true
}

func (in *Input) mouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	pt := models.Point{X: x, Y: y}
	mods := modifiers(ev.Modifiers())
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		in.e.Wheel(-WheelStep, mods)
	case buttons&tcell.WheelDown != 0:
		in.e.Wheel(WheelStep, mods)
	case buttons&tcell.Button1 != 0:
		if in.pressed {
			in.e.PointerDrag(pt)
		} else {
			in.pressed = true
			in.e.PointerPress(pt, mods)
		}
	case in.pressed:
		in.pressed = false
		in.e.PointerRelease()
	default:
		return false
	}
	return true
}

func modifiers(m tcell.ModMask) gridview.Modifiers {
	var out gridview.Modifiers
	if m&tcell.ModShift != 0 {
		out |= gridview.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= gridview.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= gridview.ModAlt
	}
	return out
}
