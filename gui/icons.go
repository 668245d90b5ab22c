package gui

// Built-in 16x16 status glyphs for the demo screen.
var (
	// IconSettings is a gear.
	IconSettings = Bitmap{W: 16, H: 16, Rows: []uint16{
		0x0000,
		0x0180,
		0x1188,
		0x3BDC,
		0x1FF8,
		0x0FF0,
		0x3C3C,
		0x7818,
		0x7818,
		0x3C3C,
		0x0FF0,
		0x1FF8,
		0x3BDC,
		0x1188,
		0x0180,
		0x0000,
	}}

	// IconBattery is a two-thirds full battery.
	IconBattery = Bitmap{W: 16, H: 16, Rows: []uint16{
		0x0000,
		0x0000,
		0x0000,
		0x0000,
		0x7FF8,
		0x4008,
		0x5B4C,
		0x5B4E,
		0x5B4E,
		0x5B4C,
		0x4008,
		0x7FF8,
		0x0000,
		0x0000,
		0x0000,
		0x0000,
	}}

	// IconBell is a notification bell.
	IconBell = Bitmap{W: 16, H: 16, Rows: []uint16{
		0x0000,
		0x0180,
		0x03C0,
		0x07E0,
		0x07E0,
		0x0FF0,
		0x0FF0,
		0x0FF0,
		0x0FF0,
		0x1FF8,
		0x3FFC,
		0x0000,
		0x0180,
		0x0180,
		0x0000,
		0x0000,
	}}

	// IconWifi is three signal arcs and a dot.
	IconWifi = Bitmap{W: 16, H: 16, Rows: []uint16{
		0x0000,
		0x07E0,
		0x1FF8,
		0x381C,
		0x6006,
		0x03C0,
		0x0FF0,
		0x1C38,
		0x1008,
		0x0180,
		0x03C0,
		0x0240,
		0x0180,
		0x0180,
		0x0000,
		0x0000,
	}}
)
