//go:build tinygo && baremetal

package hal

import "machine"

type tinygoHAL struct {
	logger Logger
	led    LED
	disp   DisplayDriver
	in     InputDriver
}

func (h *tinygoHAL) Logger() Logger         { return h.logger }
func (h *tinygoHAL) LED() LED               { return h.led }
func (h *tinygoHAL) Display() DisplayDriver { return h.disp }
func (h *tinygoHAL) Input() InputDriver     { return h.in }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

func newBoardLED() LED {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &pinLED{pin: led}
}

func newBoardLogger() Logger {
	uart := machine.DefaultUART
	uart.Configure(machine.UARTConfig{BaudRate: 115200})
	return &uartLogger{uart: uart}
}
