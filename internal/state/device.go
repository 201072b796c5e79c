// Package state holds the sample device the simulator drives: the value
// cells its firmware reads and the menu that edits them.
package state

import (
	"sync"
	"time"

	"github.com/atomicstack/devmenu/internal/logging"
	"github.com/atomicstack/devmenu/internal/menu"
	"github.com/atomicstack/devmenu/internal/property"
)

// Channels is the number of pulse inputs.
const Channels = 3

// EEPROM addresses of the persisted settings.
const (
	SlotContrast  property.Slot = 0x10
	SlotBacklight property.Slot = 0x11
	SlotBeeper    property.Slot = 0x12
	SlotSensor    property.Slot = 0x13
	SlotCalib     property.Slot = 0x14
	SlotConstant  property.Slot = 0x18
	SlotOffset    property.Slot = 0x1C
	SlotAddress   property.Slot = 0x1E
	SlotBaud      property.Slot = 0x1F
	SlotDeviceID  property.Slot = 0x20
)

var (
	onOff       = [2]string{"OFF", "ON"}
	sensorModes = []string{"PULSE", "QUAD", "DIR"}
	baudRates   = []string{"9600", "19200", "38400", "57600", "115200"}
)

// Device is the state shared between the menu, the input sources and the
// command line.
type Device struct {
	Pulses      [Channels]*property.Cell[uint32]
	Contrast    *property.Cell[uint8]
	Backlight   *property.Cell[bool]
	Beeper      *property.Cell[bool]
	Sensor      *property.Cell[uint8]
	Calibration *property.Cell[float32]
	Constant    *property.Cell[uint32]
	Offset      *property.Cell[int16]
	Address     *property.Cell[uint8]
	Baud        *property.Cell[uint8]
	DeviceID    *property.Cell[uint16]
	Clock       *property.Cell[time.Time]

	Location *time.Location

	mu      sync.Mutex
	applied map[string]int
}

// NewDevice returns a device with factory defaults and its clock set to now.
func NewDevice(now time.Time) *Device {
	d := &Device{
		Contrast:    property.NewCell[uint8](32),
		Backlight:   property.NewCell(true),
		Beeper:      property.NewCell(true),
		Sensor:      property.NewCell[uint8](0),
		Calibration: property.NewCell[float32](1),
		Constant:    property.NewCell[uint32](1000),
		Offset:      property.NewCell[int16](0),
		Address:     property.NewCell[uint8](1),
		Baud:        property.NewCell[uint8](0),
		DeviceID:    property.NewCell[uint16](0x00A5),
		Clock:       property.NewCell(now.Truncate(time.Minute)),
		Location:    now.Location(),
		applied:     make(map[string]int),
	}
	for i := range d.Pulses {
		d.Pulses[i] = property.NewCell[uint32](0)
	}
	return d
}

// Pulse adds n pulses to channel ch. Out of range channels are ignored.
func (d *Device) Pulse(ch int, n uint32) uint32 {
	if ch < 0 || ch >= Channels {
		return 0
	}
	return d.Pulses[ch].Update(func(v uint32) uint32 { return v + n })
}

// ResetCounters zeroes every pulse counter.
func (d *Device) ResetCounters() {
	for _, c := range d.Pulses {
		c.Store(0)
	}
}

// Advance moves the clock forward.
func (d *Device) Advance(by time.Duration) time.Time {
	return d.Clock.Update(func(t time.Time) time.Time { return t.Add(by) })
}

// Applied reports how many times the setting with the given item id has
// been pushed to the hardware.
func (d *Device) Applied(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.applied[id]
}

func (d *Device) apply(id string) menu.Callback {
	return func(any) bool {
		d.mu.Lock()
		d.applied[id]++
		d.mu.Unlock()
		return true
	}
}

// Hooks are the actions the menu's commands trigger outside the device.
type Hooks struct {
	// Save persists every setting. A nil Save makes the command a no-op.
	Save func() error
}

// Menu returns the menu definition for d.
func (d *Device) Menu(hooks Hooks) menu.Def {
	counters := make([]menu.Def, 0, Channels+1)
	for i, cell := range d.Pulses {
		id := "counters:ch" + string(rune('0'+i))
		counters = append(counters, menu.Prop(id, "", &property.Unsigned[uint32]{Cell: cell, Digits: 8}, nil).ReadOnly())
	}
	counters = append(counters, menu.Cmd("counters:reset", "Reset", func(any) bool {
		d.ResetCounters()
		return true
	}))

	return menu.Root("main", "MAIN",
		menu.Sub("counters", "Counters", counters...),
		menu.Sub("display", "Display",
			menu.Prop("display:contrast", "Contrast",
				&property.Unsigned[uint8]{Cell: d.Contrast, Slot: SlotContrast, Max: 63},
				d.apply("display:contrast")),
			menu.Prop("display:backlight", "Backlight",
				&property.Bool{Cell: d.Backlight, Slot: SlotBacklight, Labels: onOff},
				d.apply("display:backlight")),
			menu.Prop("display:beeper", "Beeper",
				&property.Bool{Cell: d.Beeper, Slot: SlotBeeper, Labels: onOff},
				d.apply("display:beeper")),
		),
		menu.Sub("sensor", "Sensor",
			menu.Prop("sensor:mode", "Mode",
				&property.Enum{Cell: d.Sensor, Slot: SlotSensor, Labels: sensorModes},
				d.apply("sensor:mode")),
			menu.Prop("sensor:calib", "Calib",
				&property.Float{Cell: d.Calibration, Slot: SlotCalib, Min: 0.5, Max: 2, Width: 6, Frac: 3}, nil),
			menu.Prop("sensor:constant", "Constant",
				&property.Unsigned[uint32]{Cell: d.Constant, Slot: SlotConstant, Min: 1, Max: 99999}, nil),
			menu.Prop("sensor:offset", "Offset",
				&property.Signed[int16]{Cell: d.Offset, Slot: SlotOffset, Min: -999, Max: 999}, nil),
		),
		menu.Sub("modbus", "Modbus",
			menu.Prop("modbus:address", "Address",
				&property.Unsigned[uint8]{Cell: d.Address, Slot: SlotAddress, Min: 1, Max: 247},
				d.apply("modbus:address")),
			menu.Prop("modbus:baud", "Baud",
				&property.Enum{Cell: d.Baud, Slot: SlotBaud, Labels: baudRates},
				d.apply("modbus:baud")),
			menu.Prop("modbus:id", "Device ID",
				&property.Hex[uint16]{Cell: d.DeviceID, Slot: SlotDeviceID}, nil),
		),
		menu.Sub("clock", "Clock",
			menu.Prop("clock:time", "Time", &property.Time{Cell: d.Clock, Location: d.Location}, nil),
			menu.Prop("clock:date", "Date", &property.Date{Cell: d.Clock, Location: d.Location}, nil),
		),
		menu.Cmd("save", "Save", func(any) bool {
			if hooks.Save == nil {
				return true
			}
			if err := hooks.Save(); err != nil {
				logging.Error(err)
			}
			return true
		}),
		menu.Cmd("exit", "Exit", func(any) bool { return false }),
	)
}
