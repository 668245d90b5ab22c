//go:build tinygo && baremetal && !glimmer_mono

package hal

import (
	"errors"
	"machine"
)

const (
	ft6206Addr     = 0x38
	ft6206RegCount = 0x02
	ft6206RegChip  = 0xA8
	ft6206ChipID   = 0x11
)

// ft6206 polls an FT6206 capacitive touch controller over I2C. The
// controller reports in the panel's native portrait frame; xform maps
// each sample into the frame the panel is driven in.
type ft6206 struct {
	bus   *machine.I2C
	xform func(x, y int16) (int16, int16)
	last  PointerState
	buf   [5]byte
}

func newFT6206(bus *machine.I2C, xform func(x, y int16) (int16, int16)) (*ft6206, error) {
	err := bus.Configure(machine.I2CConfig{
		SCL:       machine.I2C0_SCL_PIN,
		SDA:       machine.I2C0_SDA_PIN,
		Frequency: 400_000,
	})
	if err != nil {
		return nil, err
	}

	var id [1]byte
	if err := bus.ReadRegister(ft6206Addr, ft6206RegChip, id[:]); err != nil {
		return nil, err
	}
	if id[0] != ft6206ChipID {
		return nil, errors.New("ft6206: unexpected chip id")
	}
	return &ft6206{bus: bus, xform: xform}, nil
}

// Read returns the last touch point. A failed bus transaction reports a
// release at the previous coordinates rather than blocking the work unit.
func (t *ft6206) Read() PointerState {
	if err := t.bus.ReadRegister(ft6206Addr, ft6206RegCount, t.buf[:]); err != nil {
		t.last.Pressed = false
		return t.last
	}
	if t.buf[0]&0x0F == 0 {
		t.last.Pressed = false
		return t.last
	}
	x := int16(t.buf[1]&0x0F)<<8 | int16(t.buf[2])
	y := int16(t.buf[3]&0x0F)<<8 | int16(t.buf[4])
	if t.xform != nil {
		x, y = t.xform(x, y)
	}
	t.last = PointerState{X: x, Y: y, Pressed: true}
	return t.last
}
