package hal

// rgb888From565 expands an RGB565 pixel back to 8-bit channels.
func rgb888From565(p uint16) (r, g, b uint8) {
	r = uint8((p >> 11) & 0x1F)
	g = uint8((p >> 5) & 0x3F)
	b = uint8(p & 0x1F)
	r = r<<3 | r>>2
	g = g<<2 | g>>4
	b = b<<3 | b>>2
	return r, g, b
}
