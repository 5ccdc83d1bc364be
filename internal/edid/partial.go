package edid

// PartialColorimetry is a sparse colorimetry update. Nil coordinates are
// left untouched when merged.
type PartialColorimetry struct {
	RedX   *float64 `json:"redX,omitempty"`
	RedY   *float64 `json:"redY,omitempty"`
	GreenX *float64 `json:"greenX,omitempty"`
	GreenY *float64 `json:"greenY,omitempty"`
	BlueX  *float64 `json:"blueX,omitempty"`
	BlueY  *float64 `json:"blueY,omitempty"`
	WhiteX *float64 `json:"whiteX,omitempty"`
	WhiteY *float64 `json:"whiteY,omitempty"`
}

// PartialParams is a sparse parameter update supplied by an external source
// such as the assistant. Numeric fields are float64 so an out-of-domain value
// (NaN, infinity) can be carried and dropped at merge time instead of failing
// the whole update.
type PartialParams struct {
	DisplayName *string `json:"displayName,omitempty"`

	PixelClock   *float64 `json:"pixelClock,omitempty"`
	HAddressable *float64 `json:"hAddressable,omitempty"`
	HBlanking    *float64 `json:"hBlanking,omitempty"`
	VAddressable *float64 `json:"vAddressable,omitempty"`
	VBlanking    *float64 `json:"vBlanking,omitempty"`
	HFrontPorch  *float64 `json:"hFrontPorch,omitempty"`
	HSyncWidth   *float64 `json:"hSyncWidth,omitempty"`
	VFrontPorch  *float64 `json:"vFrontPorch,omitempty"`
	VSyncWidth   *float64 `json:"vSyncWidth,omitempty"`
	HImageSize   *float64 `json:"hImageSize,omitempty"`
	VImageSize   *float64 `json:"vImageSize,omitempty"`
	HBorder      *float64 `json:"hBorder,omitempty"`
	VBorder      *float64 `json:"vBorder,omitempty"`
	RefreshRate  *float64 `json:"refreshRate,omitempty"`

	Colorimetry *PartialColorimetry `json:"colorimetry,omitempty"`
}

// Numeric returns the supplied value for f, if any.
func (pp PartialParams) Numeric(f Field) (float64, bool) {
	var v *float64
	switch f {
	case FieldPixelClock:
		v = pp.PixelClock
	case FieldHAddressable:
		v = pp.HAddressable
	case FieldHBlanking:
		v = pp.HBlanking
	case FieldVAddressable:
		v = pp.VAddressable
	case FieldVBlanking:
		v = pp.VBlanking
	case FieldHFrontPorch:
		v = pp.HFrontPorch
	case FieldHSyncWidth:
		v = pp.HSyncWidth
	case FieldVFrontPorch:
		v = pp.VFrontPorch
	case FieldVSyncWidth:
		v = pp.VSyncWidth
	case FieldHImageSize:
		v = pp.HImageSize
	case FieldVImageSize:
		v = pp.VImageSize
	case FieldHBorder:
		v = pp.HBorder
	case FieldVBorder:
		v = pp.VBorder
	case FieldRefreshRate:
		v = pp.RefreshRate
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// IsEmpty reports whether the update carries no fields at all.
func (pp PartialParams) IsEmpty() bool {
	if pp.DisplayName != nil || pp.Colorimetry != nil {
		return false
	}
	for f := FieldPixelClock; f <= FieldRefreshRate; f++ {
		if _, ok := pp.Numeric(f); ok {
			return false
		}
	}
	return true
}
