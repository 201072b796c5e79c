package lcd

import (
	"testing"
	"time"

	"github.com/atomicstack/devmenu/internal/controller"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
	"github.com/atomicstack/devmenu/internal/testutil"
)

func newTestDisplay(t *testing.T) (*controller.Controller, *Display) {
	t.Helper()
	tree, err := menu.Build(menu.Root("root", "MAIN",
		menu.Prop("level", "Level", &property.Unsigned[uint8]{Cell: property.NewCell[uint8](5), Max: 12}, nil),
		menu.Sub("settings", "Settings",
			menu.Prop("settings:flag", "Flag", &property.Bool{Cell: property.NewCell(false), Labels: [2]string{"OFF", "ON"}}, nil),
		),
		menu.Prop("clock", "Clock", &property.Time{
			Cell:     property.NewCell(time.Date(2024, 5, 1, 12, 34, 0, 0, time.UTC)),
			Location: time.UTC,
		}, nil),
		menu.Cmd("exit", "Exit", nil),
	))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	d := New(menu.DefaultLayout)
	c := controller.New(tree, d)
	if err := c.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	return c, d
}

func TestBrowseFrame(t *testing.T) {
	_, d := newTestDisplay(t)
	if d.Frames() != 1 {
		t.Fatalf("expected one frame, got %d", d.Frames())
	}
	testutil.AssertGolden(t, "lcd_browse.golden", d.String())
}

func TestSubmenuTitle(t *testing.T) {
	c, d := newTestDisplay(t)
	c.Process(controller.EventNext)
	c.Process(controller.EventEnter)
	lines := d.Lines(false)
	if lines[0] != "===== Settings =====" {
		t.Fatalf("unexpected title %q", lines[0])
	}
	if lines[1] != ">Flag            OFF" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if lines[2] != "                    " || lines[3] != "                    " {
		t.Fatalf("expected blank padding rows, got %q %q", lines[2], lines[3])
	}
}

func TestToggleEditBlanksValue(t *testing.T) {
	c, d := newTestDisplay(t)
	c.Process(controller.EventEditStart)
	if got := d.Lines(true)[1]; got != ">Level              " {
		t.Fatalf("unexpected blank row %q", got)
	}
	if got := d.Lines(false)[1]; got != ">Level           005" {
		t.Fatalf("unexpected lit row %q", got)
	}
}

func TestDigitEditBlanksCursorDigit(t *testing.T) {
	c, d := newTestDisplay(t)
	c.Process(controller.EventNext)
	c.Process(controller.EventNext)
	c.Process(controller.EventEditStart)
	if got := d.Lines(true)[3]; got != ">Clock         12:3 " {
		t.Fatalf("unexpected blank row %q", got)
	}
	c.Process(controller.EventEnter)
	if got := d.Lines(true)[3]; got != ">Clock         12: 4" {
		t.Fatalf("unexpected blank row after advance %q", got)
	}
}

func TestBrowseIgnoresBlank(t *testing.T) {
	_, d := newTestDisplay(t)
	if got := d.Lines(true); got[1] != ">Level           005" {
		t.Fatalf("expected no blanking while browsing, got %q", got[1])
	}
}

func TestTitleLine(t *testing.T) {
	if got := TitleLine(menu.None, 6); got != "======" {
		t.Fatalf("unexpected empty title %q", got)
	}
	tree := menu.MustBuild(menu.Root("root", "A long menu title", menu.Cmd("x", "", nil)))
	if got := TitleLine(tree.Root(), 10); got != " A long me" {
		t.Fatalf("unexpected clipped title %q", got)
	}
}
