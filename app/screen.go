package app

import (
	"image/color"

	"glimmer/gui"
)

type theme struct {
	bg, fg, accent color.RGBA
}

// buildScreen populates the demo screen: a title, a status icon strip,
// a circularly scrolling banner and two LEDs that toggle on touch.
func buildScreen(ui *gui.UI, th theme) error {
	scr := ui.Screen()
	scr.SetBackground(th.bg)

	title := gui.NewLabel(scr)
	title.SetColor(th.fg)
	title.SetText("glimmer demo")
	title.Align(gui.AlignCenter, 0, -25)

	strip := []gui.Bitmap{gui.IconSettings, gui.IconBattery, gui.IconBell, gui.IconWifi}
	offsets := []int16{-55, -35, 35, 55}
	for i, bmp := range strip {
		icon := gui.NewIcon(scr, bmp)
		icon.SetColor(th.fg)
		icon.Align(gui.AlignCenter, offsets[i], -48)
	}

	banner := gui.NewLabel(scr)
	banner.SetColor(th.accent)
	banner.SetLongMode(gui.LongModeScrollCircular)
	banner.SetWidth(150)
	banner.SetText("It is a circularly scrolling text. ")
	banner.Align(gui.AlignCenter, 0, 0)

	led1 := gui.NewLED(scr)
	led1.SetSize(12, 12)
	led1.SetPos(45, 50)
	led1.SetColor(th.accent)
	led1.Off()
	led1.OnClick(led1.Toggle)

	led2 := gui.NewLED(scr)
	led2.SetSize(12, 12)
	led2.SetPos(60, 50)
	led2.SetColor(th.accent)
	led2.On()
	led2.OnClick(led2.Toggle)

	return nil
}
