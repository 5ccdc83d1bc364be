package edid

import (
	"fmt"
	"math"
	"strings"
)

// Advisory ranges. These are sanity rails for the form, not hard protocol
// limits; they only apply once the base positivity check has passed.
const (
	maxPixelClock   = 1_000_000 // kHz
	minHAddressable = 320
	maxHAddressable = 8192
	minVAddressable = 240
	maxVAddressable = 4320
	minRefreshRate  = 24
	maxRefreshRate  = 240
)

// Validate checks p against the legal input domain of the encoder and
// returns a field-name -> message map. An empty map means p may be encoded.
// Validate never mutates p and has no side effects; the UI consults it after
// every field change and before every encode.
func Validate(p Params) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(p.DisplayName)
	if name == "" {
		errs["displayName"] = "display name is required"
	} else if len(name) > nameMaxLen {
		errs["displayName"] = fmt.Sprintf("display name must be at most %d characters", nameMaxLen)
	}

	positive := map[string]int{
		"pixelClock":   p.PixelClock,
		"hAddressable": p.HAddressable,
		"hBlanking":    p.HBlanking,
		"vAddressable": p.VAddressable,
		"vBlanking":    p.VBlanking,
		"hFrontPorch":  p.HFrontPorch,
		"hSyncWidth":   p.HSyncWidth,
		"vFrontPorch":  p.VFrontPorch,
		"vSyncWidth":   p.VSyncWidth,
		"hImageSize":   p.HImageSize,
		"vImageSize":   p.VImageSize,
		"refreshRate":  p.RefreshRate,
	}
	for field, v := range positive {
		if v <= 0 {
			errs[field] = "must be greater than 0"
		}
	}

	if p.HBorder < 0 {
		errs["hBorder"] = "must be 0 or greater"
	}
	if p.VBorder < 0 {
		errs["vBorder"] = "must be 0 or greater"
	}

	validateColorimetry(errs, p.Colorimetry)

	// Advisory ranges, only meaningful on top of a passing base check.
	if errs["pixelClock"] == "" && p.PixelClock > maxPixelClock {
		errs["pixelClock"] = fmt.Sprintf("must be at most %d kHz", maxPixelClock)
	}
	if errs["hAddressable"] == "" && (p.HAddressable < minHAddressable || p.HAddressable > maxHAddressable) {
		errs["hAddressable"] = fmt.Sprintf("must be between %d and %d", minHAddressable, maxHAddressable)
	}
	if errs["vAddressable"] == "" && (p.VAddressable < minVAddressable || p.VAddressable > maxVAddressable) {
		errs["vAddressable"] = fmt.Sprintf("must be between %d and %d", minVAddressable, maxVAddressable)
	}
	if errs["refreshRate"] == "" && (p.RefreshRate < minRefreshRate || p.RefreshRate > maxRefreshRate) {
		errs["refreshRate"] = fmt.Sprintf("must be between %d and %d Hz", minRefreshRate, maxRefreshRate)
	}

	// Back porch must stay positive once the triad members are individually
	// valid.
	if errs["hBlanking"] == "" && errs["hFrontPorch"] == "" && errs["hSyncWidth"] == "" {
		if p.HBlanking-p.HFrontPorch-p.HSyncWidth <= 0 {
			errs["hBlanking"] = "blanking must exceed front porch plus sync width"
		}
	}
	if errs["vBlanking"] == "" && errs["vFrontPorch"] == "" && errs["vSyncWidth"] == "" {
		if p.VBlanking-p.VFrontPorch-p.VSyncWidth <= 0 {
			errs["vBlanking"] = "blanking must exceed front porch plus sync width"
		}
	}

	if p.Audio.Enabled {
		if len(p.Audio.SampleRates) == 0 {
			errs["audioSampleRates"] = "select at least one sample rate"
		}
		if len(p.Audio.BitDepths) == 0 {
			errs["audioBitDepths"] = "select at least one bit depth"
		}
	}

	return errs
}

func validateColorimetry(errs map[string]string, c Colorimetry) {
	coords := map[string]float64{
		"redX": c.RedX, "redY": c.RedY,
		"greenX": c.GreenX, "greenY": c.GreenY,
		"blueX": c.BlueX, "blueY": c.BlueY,
		"whiteX": c.WhiteX, "whiteY": c.WhiteY,
	}
	for field, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 0.999 {
			errs[field] = "must be between 0 and 0.999"
		}
	}
}
