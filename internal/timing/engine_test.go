package timing

import (
	"math"
	"testing"

	"github.com/praqsys/edidctl/internal/edid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base() edid.Params {
	return edid.DefaultParams() // 1080p60: hTotal 2200, vTotal 1125
}

func TestRecomputeBlankingEditDerivesRefreshRate(t *testing.T) {
	p := Recompute(base(), edid.FieldHBlanking, 380, Locks{})

	assert.Equal(t, 380, p.HBlanking)
	// 148500*1000 / (2300*1125) = 57.39 -> 57
	assert.Equal(t, 57, p.RefreshRate)
	assert.Equal(t, 148500, p.PixelClock)
}

func TestRecomputeBlankingEditWithRefreshLockDerivesPixelClock(t *testing.T) {
	p := Recompute(base(), edid.FieldHBlanking, 380, Locks{RefreshRate: true})

	assert.Equal(t, 60, p.RefreshRate)
	// 60 * 2300 * 1125 / 1000 = 155250
	assert.Equal(t, 155250, p.PixelClock)
}

func TestRecomputeBothLocksDiscardsCoreTimingEdit(t *testing.T) {
	locks := Locks{RefreshRate: true, PixelClock: true}
	before := base()

	for _, f := range []edid.Field{
		edid.FieldHAddressable, edid.FieldHBlanking,
		edid.FieldVAddressable, edid.FieldVBlanking,
	} {
		after := Recompute(before, f, before.Get(f)+100, locks)
		assert.Equal(t, before, after, "edit to %s should be discarded", f)
	}
}

func TestRecomputeBothLocksStillAllowsOtherFields(t *testing.T) {
	locks := Locks{RefreshRate: true, PixelClock: true}
	p := Recompute(base(), edid.FieldHImageSize, 600, locks)
	assert.Equal(t, 600, p.HImageSize)
}

func TestRecomputeRefreshRateEditDerivesPixelClock(t *testing.T) {
	p := Recompute(base(), edid.FieldRefreshRate, 75, Locks{})

	assert.Equal(t, 75, p.RefreshRate)
	// 75 * 2200 * 1125 / 1000 = 185625
	assert.Equal(t, 185625, p.PixelClock)
	assert.Equal(t, 280, p.HBlanking, "blanking untouched without a pixel clock lock")
}

func TestRecomputeRefreshRateEditWithPixelClockLockResizesBlanking(t *testing.T) {
	p := Recompute(base(), edid.FieldRefreshRate, 30, Locks{PixelClock: true})

	require.Equal(t, 148500, p.PixelClock)
	require.Equal(t, 30, p.RefreshRate)

	// totalArea = 148500000/30 = 4.95e6 pixels; the previous 2200:1125
	// aspect is preserved, so the new totals are sqrt-scaled by ~1.414.
	hTotal := float64(p.HTotal())
	vTotal := float64(p.VTotal())
	assert.InDelta(t, 4.95e6, hTotal*vTotal, float64(hTotal+vTotal),
		"total area should match the locked clock at the new rate")
	assert.InDelta(t, 2200.0/1125.0, hTotal/vTotal, 0.01, "aspect preserved")
	assert.Equal(t, 1920, p.HAddressable)
	assert.Equal(t, 1080, p.VAddressable)
}

func TestRecomputeClampRejectLeavesBlankingUntouched(t *testing.T) {
	// Doubling the refresh rate under a clock lock would need negative
	// blanking; the derivation must be silently dropped.
	p := Recompute(base(), edid.FieldRefreshRate, 240, Locks{PixelClock: true})

	assert.Equal(t, 240, p.RefreshRate)
	assert.Equal(t, 280, p.HBlanking)
	assert.Equal(t, 45, p.VBlanking)
}

func TestRecomputePixelClockEditDerivesRefreshRate(t *testing.T) {
	p := Recompute(base(), edid.FieldPixelClock, 74250, Locks{})
	assert.Equal(t, 30, p.RefreshRate)
}

func TestRecomputePixelClockEditWithRefreshLockResizesBlanking(t *testing.T) {
	p := Recompute(base(), edid.FieldPixelClock, 297000, Locks{RefreshRate: true})

	require.Equal(t, 60, p.RefreshRate)
	hTotal := float64(p.HTotal())
	vTotal := float64(p.VTotal())
	assert.InDelta(t, 297000000.0/60.0, hTotal*vTotal, float64(hTotal+vTotal))
	assert.InDelta(t, 2200.0/1125.0, hTotal/vTotal, 0.01)
}

func TestRecomputeInverseLaw(t *testing.T) {
	// Editing the clock, then rederiving it from the implied refresh rate,
	// must reproduce the original within integer rounding. Clocks here are
	// exact multiples of hTotal*vTotal/1000 so the intermediate integer
	// refresh rate loses nothing beyond +-1 of rounding.
	for _, clock := range []int{59400, 148500, 185625, 356400, 594000} {
		p := Recompute(base(), edid.FieldPixelClock, clock, Locks{})
		q := Recompute(p, edid.FieldRefreshRate, p.RefreshRate, Locks{})
		assert.InDelta(t, clock, q.PixelClock, 1, "clock %d not reproduced", clock)
	}
}

func TestRecomputeZeroTotalSkipsDerivation(t *testing.T) {
	p := base()
	p.HAddressable = 0
	p.HBlanking = 0

	got := Recompute(p, edid.FieldVBlanking, 50, Locks{})
	assert.Equal(t, 50, got.VBlanking, "raw edit must land")
	assert.Equal(t, p.RefreshRate, got.RefreshRate, "derivation skipped")
	assert.Equal(t, p.PixelClock, got.PixelClock)
}

func ptr(v float64) *float64 { return &v }

func TestApplyExternalUpdateMergesAndDerivesRefreshRate(t *testing.T) {
	name := "HD Panel"
	p := ApplyExternalUpdate(base(), edid.PartialParams{
		DisplayName: &name,
		PixelClock:  ptr(74250),
	}, Locks{})

	assert.Equal(t, "HD Panel", p.DisplayName)
	assert.Equal(t, 74250, p.PixelClock)
	assert.Equal(t, 30, p.RefreshRate, "refresh rate derived from supplied clock")
}

func TestApplyExternalUpdatePixelClockTakesPrecedence(t *testing.T) {
	p := ApplyExternalUpdate(base(), edid.PartialParams{
		PixelClock:  ptr(74250),
		RefreshRate: ptr(100),
	}, Locks{})

	assert.Equal(t, 74250, p.PixelClock)
	assert.Equal(t, 30, p.RefreshRate, "supplied refresh rate overwritten by derivation")
}

func TestApplyExternalUpdateDerivesPixelClockFromRefreshRate(t *testing.T) {
	p := ApplyExternalUpdate(base(), edid.PartialParams{
		RefreshRate: ptr(30),
	}, Locks{})

	assert.Equal(t, 30, p.RefreshRate)
	// 30 * 2200 * 1125 / 1000
	assert.Equal(t, 74250, p.PixelClock)
}

func TestApplyExternalUpdateDropsNonFiniteFields(t *testing.T) {
	p := ApplyExternalUpdate(base(), edid.PartialParams{
		PixelClock:   ptr(math.NaN()),
		HAddressable: ptr(math.Inf(1)),
		VImageSize:   ptr(400),
	}, Locks{})

	assert.Equal(t, base().PixelClock, p.PixelClock)
	assert.Equal(t, base().HAddressable, p.HAddressable)
	assert.Equal(t, 400, p.VImageSize)
	assert.Equal(t, base().RefreshRate, p.RefreshRate, "NaN clock must not trigger derivation")
}

func TestApplyExternalUpdateNeverDerivesBlanking(t *testing.T) {
	p := ApplyExternalUpdate(base(), edid.PartialParams{
		RefreshRate: ptr(24),
	}, Locks{PixelClock: true})

	assert.Equal(t, 24, p.RefreshRate)
	assert.Equal(t, base().HBlanking, p.HBlanking)
	assert.Equal(t, base().VBlanking, p.VBlanking)
	// Pixel clock locked, so no derivation happened at all.
	assert.Equal(t, base().PixelClock, p.PixelClock)
}

func TestApplyExternalUpdateMergesColorimetryPerCoordinate(t *testing.T) {
	p := ApplyExternalUpdate(base(), edid.PartialParams{
		Colorimetry: &edid.PartialColorimetry{
			RedX:   ptr(0.680),
			GreenY: ptr(0.797),
			BlueX:  ptr(math.NaN()),
		},
	}, Locks{})

	assert.InDelta(t, 0.680, p.Colorimetry.RedX, 1e-9)
	assert.InDelta(t, 0.797, p.Colorimetry.GreenY, 1e-9)
	assert.InDelta(t, base().Colorimetry.BlueX, p.Colorimetry.BlueX, 1e-9, "NaN coordinate dropped")
	assert.InDelta(t, base().Colorimetry.WhiteX, p.Colorimetry.WhiteX, 1e-9, "unsupplied coordinate kept")
}
