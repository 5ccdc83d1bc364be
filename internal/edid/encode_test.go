package edid

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func testParams() Params {
	return Params{
		DisplayName:  "Test",
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
		Colorimetry:  SRGBColorimetry(),
	}
}

func blockSum(block []byte) int {
	sum := 0
	for _, b := range block {
		sum += int(b)
	}
	return sum % 256
}

func TestEncodeBaseBlockPrefix(t *testing.T) {
	blob := Encode(testParams())
	if len(blob) != BaseBlockSize {
		t.Fatalf("expected %d bytes, got %d", BaseBlockSize, len(blob))
	}

	year := byte(time.Now().Year() - yearEpoch)
	want := []byte{
		0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00,
		0x1C, 0x8D, 0x01, 0x01, 0x01, 0x02, 0x03, 0x04,
		0x01, year, 0x01, 0x03, 0x80, 0x35, 0x1D, 0x78, 0x0A,
	}
	if !bytes.Equal(blob[:len(want)], want) {
		t.Fatalf("prefix mismatch:\n got % X\nwant % X", blob[:len(want)], want)
	}
}

func TestEncodeChecksumZeroesBlockSum(t *testing.T) {
	blob := Encode(testParams())
	if s := blockSum(blob); s != 0 {
		t.Fatalf("base block sum = %d, want 0", s)
	}
}

func TestEncodeDetailedTimingDescriptor(t *testing.T) {
	blob := Encode(testParams())
	want := []byte{
		0x02, 0x3A, // 148500 kHz -> 14850 ten-kHz units, little-endian
		0x80, 0x18, 0x71, // 1920 / 280 with shared high nibble
		0x38, 0x2D, 0x40, // 1080 / 45
		0x58, 0x2C, 0x45, 0x00, // 88 / 44 / 4 / 5
		0x13, 0x2B, 0x21, // 531 mm / 299 mm
		0x00, 0x00, 0x18,
	}
	if got := blob[54:72]; !bytes.Equal(got, want) {
		t.Fatalf("dtd mismatch:\n got % X\nwant % X", got, want)
	}
}

func TestEncodeColorimetryPacking(t *testing.T) {
	blob := Encode(testParams())

	// sRGB red x = 0.640 -> round(655.36) = 655: high byte 0xA3, low bits 3.
	if blob[27] != 0xA3 {
		t.Fatalf("red x high byte = %#02x, want 0xA3", blob[27])
	}
	if blob[25] != 0xEE {
		t.Fatalf("red/green low bits = %#02x, want 0xEE", blob[25])
	}
	if blob[26] != 0x91 {
		t.Fatalf("blue/white low bits = %#02x, want 0x91", blob[26])
	}
}

func TestEncodeNameDescriptor(t *testing.T) {
	blob := Encode(testParams())

	head := []byte{0x00, 0x00, 0x00, 0xFC, 0x00}
	if !bytes.Equal(blob[72:77], head) {
		t.Fatalf("name descriptor header mismatch: % X", blob[72:77])
	}
	if got := string(blob[77:81]); got != "Test" {
		t.Fatalf("name = %q, want Test", got)
	}
	if blob[81] != 0x0A {
		t.Fatalf("expected LF terminator, got %#02x", blob[81])
	}
	for i := 82; i < 90; i++ {
		if blob[i] != 0x20 {
			t.Fatalf("expected space padding at %d, got %#02x", i, blob[i])
		}
	}
}

func TestEncodeNameTruncation(t *testing.T) {
	p := testParams()
	p.DisplayName = "ABCDEFGHIJKLMNOPQRST"
	blob := Encode(p)

	if got := string(blob[77:90]); got != "ABCDEFGHIJKLM" {
		t.Fatalf("truncated name = %q", got)
	}
}

func TestEncodeDummyDescriptors(t *testing.T) {
	blob := Encode(testParams())
	for _, start := range []int{90, 108} {
		desc := blob[start : start+descriptorSize]
		if desc[3] != tagDummy {
			t.Fatalf("descriptor at %d: tag %#02x, want %#02x", start, desc[3], tagDummy)
		}
		for i, b := range desc {
			if i != 3 && b != 0 {
				t.Fatalf("descriptor at %d: nonzero byte %#02x at %d", start, b, i)
			}
		}
	}
}

func TestEncodeAudioExtension(t *testing.T) {
	p := testParams()
	p.Audio = Audio{
		Enabled:     true,
		Channels:    6,
		SampleRates: []int{Rate44kHz, Rate48kHz},
		BitDepths:   []int{Depth16, Depth20, Depth24},
	}
	blob := Encode(p)

	if len(blob) != BaseBlockSize+ExtensionBlockSize {
		t.Fatalf("expected %d bytes, got %d", BaseBlockSize+ExtensionBlockSize, len(blob))
	}
	if blob[126] != 1 {
		t.Fatalf("extension count = %d, want 1", blob[126])
	}
	if s := blockSum(blob[:128]); s != 0 {
		t.Fatalf("base block sum = %d, want 0", s)
	}
	if s := blockSum(blob[128:]); s != 0 {
		t.Fatalf("extension block sum = %d, want 0", s)
	}

	ext := blob[128:]
	want := []byte{0x02, 0x03, 0x08, 0x40, 0x23, 0x0D, 0x06, 0x07}
	if !bytes.Equal(ext[:8], want) {
		t.Fatalf("extension header mismatch:\n got % X\nwant % X", ext[:8], want)
	}
}

func TestEncodeNoAudioHasNoExtension(t *testing.T) {
	blob := Encode(testParams())
	if blob[126] != 0 {
		t.Fatalf("extension count = %d, want 0", blob[126])
	}
}

func TestEncodeDeterministic(t *testing.T) {
	p := testParams()
	if !bytes.Equal(Encode(p), Encode(p)) {
		t.Fatalf("two encodes of the same params differ")
	}
}

func TestFilename(t *testing.T) {
	p := testParams()
	p.DisplayName = "My Display"
	if got := Filename(p); got != "My_Display.bin" {
		t.Fatalf("filename = %q", got)
	}
	p.DisplayName = "  "
	if got := Filename(p); got != "edid.bin" {
		t.Fatalf("empty-name filename = %q", got)
	}
}

func TestParseFieldRoundTrip(t *testing.T) {
	for f := FieldPixelClock; f <= FieldRefreshRate; f++ {
		got, err := ParseField(f.String())
		if err != nil {
			t.Fatalf("parse %q: %v", f.String(), err)
		}
		if got != f {
			t.Fatalf("parse %q = %v, want %v", f.String(), got, f)
		}
	}
	if _, err := ParseField("displayName"); err == nil {
		t.Fatalf("expected error for non-numeric field name")
	}
	if _, err := ParseField(strings.ToUpper("pixelClock")); err == nil {
		t.Fatalf("expected field names to be case sensitive")
	}
}
