// Package timing keeps pixel clock, resolution, and refresh rate mutually
// consistent while the parameter record is edited one field at a time or
// patched in bulk by an external source.
package timing

import (
	"math"

	"github.com/praqsys/edidctl/internal/edid"
)

// Locks pins refresh rate and/or pixel clock during recomputation. They are
// engine call parameters, not part of the parameter record: the record stays
// a pure description of the display.
type Locks struct {
	RefreshRate bool `json:"refreshRate"`
	PixelClock  bool `json:"pixelClock"`
}

// Recompute applies a single-field edit to current and rederives whichever of
// refresh rate or pixel clock is unpinned so the timing identity
//
//	refreshRate = round(pixelClock*1000 / (hTotal*vTotal))
//
// keeps holding. Editing refresh rate or pixel clock while the other is
// locked instead rederives blanking, preserving the previous aspect ratio.
// With both locks held, edits to the addressable/blanking quartet are
// discarded wholesale.
func Recompute(current edid.Params, changed edid.Field, value int, locks Locks) edid.Params {
	p := current.WithField(changed, value)

	hTotal := p.HTotal()
	vTotal := p.VTotal()
	// Degenerate totals would divide by zero; keep the raw edit and skip
	// derivation.
	if hTotal <= 0 || vTotal <= 0 {
		return p
	}

	switch changed {
	case edid.FieldHAddressable, edid.FieldHBlanking, edid.FieldVAddressable, edid.FieldVBlanking:
		if locks.RefreshRate && locks.PixelClock {
			return current
		}
		if locks.RefreshRate {
			p.PixelClock = round(float64(p.RefreshRate) * float64(hTotal) * float64(vTotal) / 1000)
		} else {
			p.RefreshRate = round(float64(p.PixelClock) * 1000 / (float64(hTotal) * float64(vTotal)))
		}

	case edid.FieldRefreshRate:
		if locks.PixelClock {
			deriveBlanking(&p, current, float64(p.PixelClock)*1000/float64(p.RefreshRate))
		} else {
			p.PixelClock = round(float64(p.RefreshRate) * float64(hTotal) * float64(vTotal) / 1000)
		}

	case edid.FieldPixelClock:
		if locks.RefreshRate {
			deriveBlanking(&p, current, float64(p.PixelClock)*1000/float64(p.RefreshRate))
		} else {
			p.RefreshRate = round(float64(p.PixelClock) * 1000 / (float64(hTotal) * float64(vTotal)))
		}
	}

	return p
}

// deriveBlanking resizes both blanking intervals so the total pixel area
// matches totalArea while the aspect ratio of the previous totals is kept.
// Results that would go negative (or are not finite, when the edited value
// was zero) leave blanking untouched.
func deriveBlanking(p *edid.Params, prev edid.Params, totalArea float64) {
	aspect := float64(prev.HTotal()) / float64(prev.VTotal())
	newVTotal := math.Sqrt(totalArea / aspect)
	newHTotal := totalArea / newVTotal

	hBlank := math.Round(newHTotal - float64(p.HAddressable))
	vBlank := math.Round(newVTotal - float64(p.VAddressable))
	if !isFinite(hBlank) || !isFinite(vBlank) || hBlank < 0 || vBlank < 0 {
		return
	}
	p.HBlanking = int(hBlank)
	p.VBlanking = int(vBlank)
}

// ApplyExternalUpdate merges a sparse update (for example from the assistant)
// into current and settles the record with exactly one derived recompute:
// a supplied pixel clock rederives refresh rate unless refresh rate is
// locked; otherwise a supplied refresh rate rederives pixel clock unless
// pixel clock is locked. When both are supplied, pixel clock wins. Blanking
// is only ever set from the update itself, never derived here.
//
// Non-finite numeric members of the update are dropped field by field; a
// partially garbled update still applies its healthy fields.
func ApplyExternalUpdate(current edid.Params, partial edid.PartialParams, locks Locks) edid.Params {
	p := current

	if partial.DisplayName != nil {
		p.DisplayName = *partial.DisplayName
	}

	for f := edid.FieldPixelClock; f <= edid.FieldRefreshRate; f++ {
		v, ok := partial.Numeric(f)
		if !ok || !isFinite(v) {
			continue
		}
		p = p.WithField(f, round(v))
	}

	if partial.Colorimetry != nil {
		mergeColorimetry(&p.Colorimetry, *partial.Colorimetry)
	}

	hTotal := p.HTotal()
	vTotal := p.VTotal()
	if hTotal <= 0 || vTotal <= 0 {
		return p
	}

	clock, hasClock := partial.Numeric(edid.FieldPixelClock)
	rate, hasRate := partial.Numeric(edid.FieldRefreshRate)
	switch {
	case hasClock && isFinite(clock) && !locks.RefreshRate:
		p.RefreshRate = round(float64(p.PixelClock) * 1000 / (float64(hTotal) * float64(vTotal)))
	case hasRate && isFinite(rate) && !locks.PixelClock:
		p.PixelClock = round(float64(p.RefreshRate) * float64(hTotal) * float64(vTotal) / 1000)
	}

	return p
}

func mergeColorimetry(dst *edid.Colorimetry, src edid.PartialColorimetry) {
	merge := func(dst *float64, src *float64) {
		if src != nil && isFinite(*src) {
			*dst = *src
		}
	}
	merge(&dst.RedX, src.RedX)
	merge(&dst.RedY, src.RedY)
	merge(&dst.GreenX, src.GreenX)
	merge(&dst.GreenY, src.GreenY)
	merge(&dst.BlueX, src.BlueX)
	merge(&dst.BlueY, src.BlueY)
	merge(&dst.WhiteX, src.WhiteX)
	merge(&dst.WhiteY, src.WhiteY)
}

// round is round-half-away-from-zero, matching the derivation formulas.
func round(v float64) int {
	return int(math.Round(v))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
