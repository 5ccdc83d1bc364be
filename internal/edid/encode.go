package edid

import (
	"math"
	"time"
)

// Block and descriptor geometry from the EDID 1.3 contract.
const (
	BaseBlockSize      = 128
	ExtensionBlockSize = 128
	descriptorSize     = 18
	nameMaxLen         = 13
)

// Fixed identity bytes. Manufacturer ID and the product/serial placeholders
// are constant: the generated block describes a synthetic display, not a
// tracked hardware unit.
const (
	manufacturerHi = 0x1C
	manufacturerLo = 0x8D

	edidVersion  = 0x01
	edidRevision = 0x03

	// Digital input, 8 bits per color.
	videoInputDigital = 0x80
	// Gamma 2.2, stored as (gamma*100)-100.
	gammaByte = 0x78
	// Feature support: preferred timing mode in descriptor 1.
	featureByte = 0x0A

	// DTD flags: digital separate sync, positive polarity on both axes.
	dtdFlags = 0x18

	// Descriptor tags.
	tagDisplayName = 0xFC
	tagDummy       = 0x10
)

// CEA-861 extension constants.
const (
	ceaTag     = 0x02
	ceaVersion = 0x03
	// Data block collection is 4 bytes (header + one 3-byte SAD), so the
	// first (absent) detailed timing descriptor would start at offset 8.
	ceaDTDOffset = 8
	// Flags bit 6: basic audio supported.
	ceaBasicAudio = 0x40
	// Audio data block: tag 1 in the top 3 bits, 3 payload bytes.
	audioBlockHeader = (1 << 5) | 3
	// SAD format nibble: LPCM.
	sadLPCM = 1 << 3
)

const yearEpoch = 1990

// Encode serializes p into an EDID binary block: 128 bytes, or 256 with the
// CEA-861 audio extension appended when audio is enabled. It assumes p has
// passed Validate; out-of-domain input yields a structurally well-formed but
// meaningless block rather than an error.
//
// The only input besides p is the system clock: byte 17 carries the current
// calendar year relative to 1990.
func Encode(p Params) []byte {
	base := encodeBase(p, time.Now().Year())
	if !p.Audio.Enabled {
		return base
	}
	return append(base, encodeAudioExtension(p.Audio)...)
}

func encodeBase(p Params, year int) []byte {
	buf := make([]byte, BaseBlockSize)

	// Header and identity.
	copy(buf[0:8], []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00})
	buf[8] = manufacturerHi
	buf[9] = manufacturerLo
	buf[10] = 0x01 // product code placeholder, little-endian
	buf[11] = 0x01
	buf[12] = 0x01 // serial placeholder
	buf[13] = 0x02
	buf[14] = 0x03
	buf[15] = 0x04
	buf[16] = 0x01 // manufacture week
	buf[17] = byte(year - yearEpoch)
	buf[18] = edidVersion
	buf[19] = edidRevision

	// Basic display parameters.
	buf[20] = videoInputDigital
	buf[21] = byte(p.HImageSize / 10) // cm
	buf[22] = byte(p.VImageSize / 10) // cm
	buf[23] = gammaByte
	buf[24] = featureByte

	encodeColorimetry(buf[25:35], p.Colorimetry)

	// No established timings; standard timing slots carry the 0x0101
	// "unused" filler.
	for i := 38; i < 54; i++ {
		buf[i] = 0x01
	}

	encodeDTD(buf[54:72], p)
	encodeNameDescriptor(buf[72:90], p.DisplayName)
	encodeDummyDescriptor(buf[90:108])
	encodeDummyDescriptor(buf[108:126])

	if p.Audio.Enabled {
		buf[126] = 1
	}
	buf[127] = checksum(buf[:127])
	return buf
}

// encodeColorimetry packs the eight chromaticity coordinates as 10-bit
// fixed-point values: two low bits per coordinate shared across the first
// two bytes, then one high byte each.
func encodeColorimetry(dst []byte, c Colorimetry) {
	rx := coord10(c.RedX)
	ry := coord10(c.RedY)
	gx := coord10(c.GreenX)
	gy := coord10(c.GreenY)
	bx := coord10(c.BlueX)
	by := coord10(c.BlueY)
	wx := coord10(c.WhiteX)
	wy := coord10(c.WhiteY)

	dst[0] = byte((rx&0x3)<<6 | (ry&0x3)<<4 | (gx&0x3)<<2 | gy&0x3)
	dst[1] = byte((bx&0x3)<<6 | (by&0x3)<<4 | (wx&0x3)<<2 | wy&0x3)
	dst[2] = byte(rx >> 2)
	dst[3] = byte(ry >> 2)
	dst[4] = byte(gx >> 2)
	dst[5] = byte(gy >> 2)
	dst[6] = byte(bx >> 2)
	dst[7] = byte(by >> 2)
	dst[8] = byte(wx >> 2)
	dst[9] = byte(wy >> 2)
}

// coord10 converts a CIE fraction to its 10-bit representation.
func coord10(v float64) int {
	if v < 0 {
		v = 0
	}
	if v > 0.999 {
		v = 0.999
	}
	return int(math.Round(v * 1024))
}

// encodeDTD writes the 18-byte detailed timing descriptor. Pixel counts are
// 12-bit values split into a low byte and a shared high nibble; porch and
// sync widths carry 10 and 6 significant bits respectively, with the
// overflow bits collected in byte 11.
func encodeDTD(dst []byte, p Params) {
	clock := p.PixelClock / 10 // 10 kHz units
	dst[0] = byte(clock)
	dst[1] = byte(clock >> 8)

	dst[2] = byte(p.HAddressable)
	dst[3] = byte(p.HBlanking)
	dst[4] = byte((p.HAddressable>>8)<<4 | (p.HBlanking>>8)&0xF)

	dst[5] = byte(p.VAddressable)
	dst[6] = byte(p.VBlanking)
	dst[7] = byte((p.VAddressable>>8)<<4 | (p.VBlanking>>8)&0xF)

	dst[8] = byte(p.HFrontPorch)
	dst[9] = byte(p.HSyncWidth)
	dst[10] = byte((p.VFrontPorch&0xF)<<4 | p.VSyncWidth&0xF)
	dst[11] = byte(((p.HFrontPorch>>8)&0x3)<<6 |
		((p.HSyncWidth>>8)&0x3)<<4 |
		((p.VFrontPorch>>4)&0x3)<<2 |
		(p.VSyncWidth>>4)&0x3)

	dst[12] = byte(p.HImageSize)
	dst[13] = byte(p.VImageSize)
	dst[14] = byte((p.HImageSize>>8)<<4 | (p.VImageSize>>8)&0xF)

	dst[15] = byte(p.HBorder)
	dst[16] = byte(p.VBorder)
	dst[17] = dtdFlags
}

// encodeNameDescriptor writes the display product name descriptor: up to 13
// ASCII bytes, LF-terminated when shorter, space-padded to the full width.
func encodeNameDescriptor(dst []byte, name string) {
	dst[3] = tagDisplayName
	if len(name) > nameMaxLen {
		name = name[:nameMaxLen]
	}
	i := 5
	for _, b := range []byte(name) {
		dst[i] = b
		i++
	}
	if i < 5+nameMaxLen {
		dst[i] = 0x0A
		i++
	}
	for ; i < 5+nameMaxLen; i++ {
		dst[i] = 0x20
	}
}

func encodeDummyDescriptor(dst []byte) {
	dst[3] = tagDummy
}

// encodeAudioExtension builds the CEA-861 extension block carrying a single
// LPCM short audio descriptor.
func encodeAudioExtension(a Audio) []byte {
	buf := make([]byte, ExtensionBlockSize)
	buf[0] = ceaTag
	buf[1] = ceaVersion
	buf[2] = ceaDTDOffset
	buf[3] = ceaBasicAudio
	buf[4] = audioBlockHeader

	buf[5] = byte(sadLPCM | (a.Channels-1)&0x7)

	var rates byte
	if a.HasRate(Rate32kHz) {
		rates |= 1 << 0
	}
	if a.HasRate(Rate44kHz) {
		rates |= 1 << 1
	}
	if a.HasRate(Rate48kHz) {
		rates |= 1 << 2
	}
	if a.HasRate(Rate96kHz) {
		rates |= 1 << 3
	}
	if a.HasRate(Rate192kHz) {
		rates |= 1 << 4
	}
	buf[6] = rates

	var depths byte
	if a.HasDepth(Depth16) {
		depths |= 1 << 0
	}
	if a.HasDepth(Depth20) {
		depths |= 1 << 1
	}
	if a.HasDepth(Depth24) {
		depths |= 1 << 2
	}
	buf[7] = depths

	buf[127] = checksum(buf[:127])
	return buf
}

// checksum returns the byte that makes the full block sum to 0 mod 256.
func checksum(block []byte) byte {
	var sum byte
	for _, b := range block {
		sum += b
	}
	return byte(256 - int(sum))
}
