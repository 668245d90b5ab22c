//go:build tinygo && !baremetal

package hal

// BoardDisplayClass reports the class of the compiled-in panel.
func BoardDisplayClass() DisplayClass { return ColorDouble }

// New is unavailable on non-baremetal TinyGo targets.
func New() (HAL, error) {
	return nil, ErrNotImplemented
}
