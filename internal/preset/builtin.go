package preset

import "github.com/praqsys/edidctl/internal/edid"

// Builtin returns a registry populated with the standard modes. The table is
// static; a registration failure here is a programming error.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range builtins() {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

func builtins() []Preset {
	return []Preset{
		{
			ID:          "dmt.640x480.60",
			Name:        "640x480 @ 60 Hz",
			Description: "VESA DMT VGA timing",
			Params:      mode("640x480@60", 25175, 640, 160, 480, 45, 16, 96, 10, 2, 304, 228, 60),
		},
		{
			ID:          "dmt.800x600.60",
			Name:        "800x600 @ 60 Hz",
			Description: "VESA DMT SVGA timing",
			Params:      mode("800x600@60", 40000, 800, 256, 600, 28, 40, 128, 1, 4, 331, 248, 60),
		},
		{
			ID:          "dmt.1024x768.60",
			Name:        "1024x768 @ 60 Hz",
			Description: "VESA DMT XGA timing",
			Params:      mode("1024x768@60", 65000, 1024, 320, 768, 38, 24, 136, 3, 6, 376, 282, 60),
		},
		{
			ID:          "cea.1280x720.60",
			Name:        "1280x720 @ 60 Hz",
			Description: "CEA-861 720p timing",
			Params:      mode("1280x720@60", 74250, 1280, 370, 720, 30, 110, 40, 5, 5, 575, 323, 60),
		},
		{
			ID:          "cea.1920x1080.30",
			Name:        "1920x1080 @ 30 Hz",
			Description: "CEA-861 1080p30 timing",
			Params:      mode("1920x1080@30", 74250, 1920, 280, 1080, 45, 88, 44, 4, 5, 531, 299, 30),
		},
		{
			ID:          "cea.1920x1080.60",
			Name:        "1920x1080 @ 60 Hz",
			Description: "CEA-861 1080p60 timing",
			Params:      mode("1920x1080@60", 148500, 1920, 280, 1080, 45, 88, 44, 4, 5, 531, 299, 60),
		},
		{
			ID:          "cvt.2560x1440.60",
			Name:        "2560x1440 @ 60 Hz",
			Description: "CVT reduced-blanking QHD timing",
			Params:      mode("2560x1440@60", 241500, 2560, 160, 1440, 41, 48, 32, 3, 5, 597, 336, 60),
		},
		{
			ID:          "cea.3840x2160.30",
			Name:        "3840x2160 @ 30 Hz",
			Description: "CEA-861 UHD 30 Hz timing",
			Params:      mode("3840x2160@30", 297000, 3840, 560, 2160, 90, 176, 88, 8, 10, 878, 494, 30),
		},
		{
			ID:          "cea.3840x2160.60",
			Name:        "3840x2160 @ 60 Hz",
			Description: "CEA-861 UHD 60 Hz timing",
			Params:      mode("3840x2160@60", 594000, 3840, 560, 2160, 90, 176, 88, 8, 10, 878, 494, 60),
		},
	}
}

func mode(name string, clock, hAddr, hBlank, vAddr, vBlank, hFP, hSW, vFP, vSW, hMM, vMM, rate int) edid.Params {
	return edid.Params{
		DisplayName:  name,
		PixelClock:   clock,
		HAddressable: hAddr,
		HBlanking:    hBlank,
		VAddressable: vAddr,
		VBlanking:    vBlank,
		HFrontPorch:  hFP,
		HSyncWidth:   hSW,
		VFrontPorch:  vFP,
		VSyncWidth:   vSW,
		HImageSize:   hMM,
		VImageSize:   vMM,
		RefreshRate:  rate,
		Colorimetry:  edid.SRGBColorimetry(),
	}
}
