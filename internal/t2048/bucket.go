package t2048

import (
	"math/bits"

	"github.com/vovakirdan/term2048/internal/core"
)

// Bucket is the display key for a tile value. Renderers map it to a colour.
type Bucket uint8

const (
	BucketEmpty Bucket = iota
	Bucket2
	Bucket4
	Bucket8
	Bucket16
	Bucket32
	Bucket64
	Bucket128
	Bucket256
	Bucket512
	Bucket1024
	Bucket2048
	BucketSuper // anything above the winning tile
)

// BucketFor returns the display bucket for a tile value.
// Values that are not powers of two fall into the bucket of their highest bit.
func BucketFor(value uint64) Bucket {
	if value == 0 {
		return BucketEmpty
	}
	exp := bits.Len64(value) - 1
	if exp < 1 {
		return Bucket2
	}
	if exp > int(Bucket2048) {
		return BucketSuper
	}
	return Bucket(exp)
}

var bucketColors = [...]core.Color{
	BucketEmpty: core.ColorGray,
	Bucket2:     core.ColorBrightYellow,
	Bucket4:     core.ColorOrange,
	Bucket8:     core.ColorPink,
	Bucket16:    core.ColorRose,
	Bucket32:    core.ColorBrightMagenta,
	Bucket64:    core.ColorBrightCyan,
	Bucket128:   core.ColorTeal,
	Bucket256:   core.ColorSlate,
	Bucket512:   core.ColorMauve,
	Bucket1024:  core.ColorBrightRed,
	Bucket2048:  core.ColorMaroon,
	BucketSuper: core.ColorBrightWhite,
}

// Color returns the screen colour used for tiles in this bucket.
func (b Bucket) Color() core.Color {
	if int(b) >= len(bucketColors) {
		return core.ColorDefault
	}
	return bucketColors[b]
}
