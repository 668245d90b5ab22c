package gui

// readPeriodMS is the logical-time interval between input polls.
const readPeriodMS = 30

// indev tracks pointer state between polls. Polling happens inside
// Process, so the read callback always runs under the GUI lock.
type indev struct {
	read       ReadFunc
	nextDue    uint32
	wasPressed bool
	pressX     int16
	pressY     int16
}

func (in *indev) poll(ui *UI, now uint32) {
	if in.read == nil || now < in.nextDue {
		return
	}
	in.nextDue = now + readPeriodMS

	x, y, pressed := in.read()
	if pressed && !in.wasPressed {
		in.pressX, in.pressY = x, y
	}
	if !pressed && in.wasPressed {
		// Click dispatch on release, at the press-down coordinates.
		if w := ui.scr.hit(in.pressX, in.pressY); w != nil {
			w.clicked()
		}
	}
	in.wasPressed = pressed
}
