package hal

// rotatePortrait270 maps a point sampled in a portrait panel's native
// frame onto the same panel driven rotated 270 degrees into landscape.
// nativeH is the panel height in the portrait frame.
func rotatePortrait270(x, y, nativeH int16) (int16, int16) {
	return nativeH - 1 - y, x
}
