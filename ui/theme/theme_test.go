package theme

import "testing"

func TestCurrent_FollowsMode(t *testing.T) {
	defer func(prev bool) { darkMode = prev }(darkMode)

	darkMode = false
	if p := Current(); p.Dark || p != light {
		t.Fatalf("expected light palette, got %+v", p)
	}
	darkMode = true
	if p := Current(); !p.Dark || p != dark {
		t.Fatalf("expected dark palette, got %+v", p)
	}
}

func TestPalettes_Complete(t *testing.T) {
	for _, p := range []Palette{light, dark} {
		for name, c := range map[string]string{"app": p.AppBg, "surface": p.Surface, "border": p.Border, "primary": p.Primary, "danger": p.Danger, "text": p.Text} {
			if len(c) != 7 || c[0] != '#' {
				t.Fatalf("palette dark=%v: %s colour %q is not #rrggbb", p.Dark, name, c)
			}
		}
		if p.Text == p.Surface {
			t.Fatalf("palette dark=%v: status text would be invisible", p.Dark)
		}
	}
}
