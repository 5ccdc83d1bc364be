package edid

import "errors"

// ErrUnknownField indicates a field name with no identifier.
var ErrUnknownField = errors.New("edid: unknown field")

// Field identifies one numeric timing parameter. The consistency engine
// dispatches on it instead of on raw field names, so any field can trigger a
// generic update without stringly-typed lookup.
type Field int

const (
	FieldPixelClock Field = iota
	FieldHAddressable
	FieldHBlanking
	FieldVAddressable
	FieldVBlanking
	FieldHFrontPorch
	FieldHSyncWidth
	FieldVFrontPorch
	FieldVSyncWidth
	FieldHImageSize
	FieldVImageSize
	FieldHBorder
	FieldVBorder
	FieldRefreshRate
)

var fieldNames = map[Field]string{
	FieldPixelClock:   "pixelClock",
	FieldHAddressable: "hAddressable",
	FieldHBlanking:    "hBlanking",
	FieldVAddressable: "vAddressable",
	FieldVBlanking:    "vBlanking",
	FieldHFrontPorch:  "hFrontPorch",
	FieldHSyncWidth:   "hSyncWidth",
	FieldVFrontPorch:  "vFrontPorch",
	FieldVSyncWidth:   "vSyncWidth",
	FieldHImageSize:   "hImageSize",
	FieldVImageSize:   "vImageSize",
	FieldHBorder:      "hBorder",
	FieldVBorder:      "vBorder",
	FieldRefreshRate:  "refreshRate",
}

// String returns the wire name of the field (its JSON key).
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseField maps a wire name back to its field identifier.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, ErrUnknownField
}

// Get returns the value of f on p.
func (p Params) Get(f Field) int {
	switch f {
	case FieldPixelClock:
		return p.PixelClock
	case FieldHAddressable:
		return p.HAddressable
	case FieldHBlanking:
		return p.HBlanking
	case FieldVAddressable:
		return p.VAddressable
	case FieldVBlanking:
		return p.VBlanking
	case FieldHFrontPorch:
		return p.HFrontPorch
	case FieldHSyncWidth:
		return p.HSyncWidth
	case FieldVFrontPorch:
		return p.VFrontPorch
	case FieldVSyncWidth:
		return p.VSyncWidth
	case FieldHImageSize:
		return p.HImageSize
	case FieldVImageSize:
		return p.VImageSize
	case FieldHBorder:
		return p.HBorder
	case FieldVBorder:
		return p.VBorder
	case FieldRefreshRate:
		return p.RefreshRate
	}
	return 0
}

// WithField returns a copy of p with f set to value.
func (p Params) WithField(f Field, value int) Params {
	switch f {
	case FieldPixelClock:
		p.PixelClock = value
	case FieldHAddressable:
		p.HAddressable = value
	case FieldHBlanking:
		p.HBlanking = value
	case FieldVAddressable:
		p.VAddressable = value
	case FieldVBlanking:
		p.VBlanking = value
	case FieldHFrontPorch:
		p.HFrontPorch = value
	case FieldHSyncWidth:
		p.HSyncWidth = value
	case FieldVFrontPorch:
		p.VFrontPorch = value
	case FieldVSyncWidth:
		p.VSyncWidth = value
	case FieldHImageSize:
		p.HImageSize = value
	case FieldVImageSize:
		p.VImageSize = value
	case FieldHBorder:
		p.HBorder = value
	case FieldVBorder:
		p.VBorder = value
	case FieldRefreshRate:
		p.RefreshRate = value
	}
	return p
}
