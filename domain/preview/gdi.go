package preview

import "image"

// GDISource grabs the screen through GDI BitBlt. It avoids the extra copy of
// the portable screen grabber and is only available on Windows.
type GDISource struct {
	Region image.Rectangle // empty means the whole primary screen
}

func (s GDISource) Name() string { return "gdi" }

// bgraToRGBA swaps the channel order of a 32-bit DIB into dst and forces
// alpha to opaque, since GDI leaves it undefined.
func bgraToRGBA(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = 0xff
	}
}
