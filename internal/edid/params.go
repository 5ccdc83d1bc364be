package edid

import "strings"

// Supported audio sample rates in Hz. CEA-861 short audio descriptors
// encode these as a bitmask, one bit per rate.
const (
	Rate32kHz  = 32000
	Rate44kHz  = 44100
	Rate48kHz  = 48000
	Rate96kHz  = 96000
	Rate192kHz = 192000
)

// Supported LPCM bit depths.
const (
	Depth16 = 16
	Depth20 = 20
	Depth24 = 24
)

// Colorimetry holds the CIE 1931 chromaticity coordinates for the three
// primaries and the white point. Each coordinate is a fraction in [0, 0.999].
type Colorimetry struct {
	RedX   float64 `json:"redX" toml:"red_x"`
	RedY   float64 `json:"redY" toml:"red_y"`
	GreenX float64 `json:"greenX" toml:"green_x"`
	GreenY float64 `json:"greenY" toml:"green_y"`
	BlueX  float64 `json:"blueX" toml:"blue_x"`
	BlueY  float64 `json:"blueY" toml:"blue_y"`
	WhiteX float64 `json:"whiteX" toml:"white_x"`
	WhiteY float64 `json:"whiteY" toml:"white_y"`
}

// Audio describes the optional CEA-861 basic-audio capability block.
// SampleRates and BitDepths hold values from the Rate* and Depth* constants.
type Audio struct {
	Enabled     bool  `json:"enabled" toml:"enabled"`
	Channels    int   `json:"channels" toml:"channels"`
	SampleRates []int `json:"sampleRates" toml:"sample_rates"`
	BitDepths   []int `json:"bitDepths" toml:"bit_depths"`
}

// HasRate reports whether rate (Hz) is among the selected sample rates.
func (a Audio) HasRate(rate int) bool {
	for _, r := range a.SampleRates {
		if r == rate {
			return true
		}
	}
	return false
}

// HasDepth reports whether depth (bits) is among the selected bit depths.
func (a Audio) HasDepth(depth int) bool {
	for _, d := range a.BitDepths {
		if d == depth {
			return true
		}
	}
	return false
}

// Params is the full description of one display mode: pixel timing, physical
// size, color characteristics, and optional audio capability. It is a plain
// value record owned by the caller; the encoder, validator, and consistency
// engine all consume it read-only and return copies.
type Params struct {
	DisplayName string `json:"displayName" toml:"display_name"`

	// PixelClock is in kHz.
	PixelClock int `json:"pixelClock" toml:"pixel_clock"`

	HAddressable int `json:"hAddressable" toml:"h_addressable"`
	HBlanking    int `json:"hBlanking" toml:"h_blanking"`
	VAddressable int `json:"vAddressable" toml:"v_addressable"`
	VBlanking    int `json:"vBlanking" toml:"v_blanking"`

	HFrontPorch int `json:"hFrontPorch" toml:"h_front_porch"`
	HSyncWidth  int `json:"hSyncWidth" toml:"h_sync_width"`
	VFrontPorch int `json:"vFrontPorch" toml:"v_front_porch"`
	VSyncWidth  int `json:"vSyncWidth" toml:"v_sync_width"`

	// Image sizes are in millimeters.
	HImageSize int `json:"hImageSize" toml:"h_image_size"`
	VImageSize int `json:"vImageSize" toml:"v_image_size"`

	HBorder int `json:"hBorder" toml:"h_border"`
	VBorder int `json:"vBorder" toml:"v_border"`

	// RefreshRate is in Hz, tied to PixelClock via
	// refreshRate = round(pixelClock*1000 / (hTotal*vTotal)).
	RefreshRate int `json:"refreshRate" toml:"refresh_rate"`

	Audio       Audio       `json:"audio" toml:"audio"`
	Colorimetry Colorimetry `json:"colorimetry" toml:"colorimetry"`
}

// HTotal returns addressable plus blanking pixels per scanline.
func (p Params) HTotal() int {
	return p.HAddressable + p.HBlanking
}

// VTotal returns addressable plus blanking lines per frame.
func (p Params) VTotal() int {
	return p.VAddressable + p.VBlanking
}

// SRGBColorimetry returns the sRGB primaries and D65 white point.
func SRGBColorimetry() Colorimetry {
	return Colorimetry{
		RedX: 0.640, RedY: 0.330,
		GreenX: 0.300, GreenY: 0.600,
		BlueX: 0.150, BlueY: 0.060,
		WhiteX: 0.3127, WhiteY: 0.329,
	}
}

// DefaultParams returns a CEA-861 1920x1080@60 mode with sRGB color and
// audio disabled. It is the record the UI starts from.
func DefaultParams() Params {
	return Params{
		DisplayName:  "My Display",
		PixelClock:   148500,
		HAddressable: 1920,
		HBlanking:    280,
		VAddressable: 1080,
		VBlanking:    45,
		HFrontPorch:  88,
		HSyncWidth:   44,
		VFrontPorch:  4,
		VSyncWidth:   5,
		HImageSize:   531,
		VImageSize:   299,
		RefreshRate:  60,
		Audio: Audio{
			Channels:    2,
			SampleRates: []int{Rate32kHz, Rate44kHz, Rate48kHz},
			BitDepths:   []int{Depth16, Depth24},
		},
		Colorimetry: SRGBColorimetry(),
	}
}

// Filename returns the download name for the encoded block: the display name
// with spaces replaced by underscores plus a .bin suffix, or edid.bin when
// the name is empty.
func Filename(p Params) string {
	name := strings.TrimSpace(p.DisplayName)
	if name == "" {
		return "edid.bin"
	}
	return strings.ReplaceAll(name, " ", "_") + ".bin"
}
