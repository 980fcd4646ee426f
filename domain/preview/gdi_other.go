//go:build !windows

package preview

import (
	"errors"
	"image"
)

// ErrGDIUnsupported is returned by GDISource on platforms without GDI.
var ErrGDIUnsupported = errors.New("preview: gdi source requires windows")

func (s GDISource) Grab() (*image.RGBA, error) { return nil, ErrGDIUnsupported }
