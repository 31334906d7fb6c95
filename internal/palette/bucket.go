package palette

import "slices"

// ColorBucket owns a non-empty collection of color samples being quantized
// together. Buckets split recursively along the channel with the widest value
// range until the iteration budget is spent; each terminal bucket then
// contributes its mean color to the palette.
type ColorBucket struct {
	colors []Color
}

// FromPixels creates a bucket that takes ownership of pixels, order preserved.
// It returns nil when pixels is empty: an empty partition is an expected
// outcome of splitting, not an error, and this is the only place the
// non-empty invariant is enforced.
func FromPixels(pixels []Color) *ColorBucket {
	if len(pixels) == 0 {
		return nil
	}
	return &ColorBucket{colors: pixels}
}

// Len returns the number of colors in the bucket.
func (b *ColorBucket) Len() int {
	return len(b.colors)
}

// MakePalette reduces the bucket to an ordered palette using the given number
// of median cut iterations. It emits at most 2^iterations colors; fewer
// whenever a split leaves one side empty. Splitting reorders the bucket's
// colors in place.
func (b *ColorBucket) MakePalette(iterations int) []Color {
	var result []Color
	b.recurse(iterations, &result)
	return result
}

// recurse walks the cut tree depth first, above-median branch before
// below-median, appending one mean color per terminal bucket. The emission
// order is an observable contract: exporters render palettes in exactly this
// order.
func (b *ColorBucket) recurse(iterations int, result *[]Color) {
	if iterations <= 0 {
		*result = append(*result, b.colorMean())
		return
	}
	above, below := b.medianCut()
	if above != nil {
		above.recurse(iterations-1, result)
	}
	if below != nil {
		below.recurse(iterations-1, result)
	}
}

// medianCut splits the bucket at the median of the widest-ranged channel into
// two freshly owned buckets. Colors strictly above the median go into the
// first, colors at or below it into the second; the median-valued pixels
// always land below. Either side is nil when its partition received no
// pixels.
func (b *ColorBucket) medianCut() (above, below *ColorBucket) {
	channel := b.highestRangeChannel()
	median := b.colorMedian(channel)

	var aboveMedian, belowMedian []Color
	for _, c := range b.colors {
		if c.Channel(channel) > median {
			aboveMedian = append(aboveMedian, c)
		} else {
			belowMedian = append(belowMedian, c)
		}
	}
	return FromPixels(aboveMedian), FromPixels(belowMedian)
}

// highestRangeChannel returns the channel with the widest value range. Alpha
// never drives a cut. Ties keep the earlier channel: R beats G and B, G beats
// B.
func (b *ColorBucket) highestRangeChannel() ColorChannel {
	ranges := b.colorRanges()
	channel := ChannelR
	highest := ranges.R

	if ranges.G > highest {
		channel = ChannelG
		highest = ranges.G
	}
	if ranges.B > highest {
		channel = ChannelB
	}
	return channel
}

// colorRanges returns max minus min per channel, packed as a Color.
func (b *ColorBucket) colorRanges() Color {
	lo, hi := b.colors[0], b.colors[0]
	for _, c := range b.colors[1:] {
		lo.R = min(lo.R, c.R)
		lo.G = min(lo.G, c.G)
		lo.B = min(lo.B, c.B)
		lo.A = min(lo.A, c.A)
		hi.R = max(hi.R, c.R)
		hi.G = max(hi.G, c.G)
		hi.B = max(hi.B, c.B)
		hi.A = max(hi.A, c.A)
	}
	return Color{R: hi.R - lo.R, G: hi.G - lo.G, B: hi.B - lo.B, A: hi.A - lo.A}
}

// sortColors stably sorts the bucket's colors by the given channel.
func (b *ColorBucket) sortColors(channel ColorChannel) {
	slices.SortStableFunc(b.colors, func(x, y Color) int {
		return int(x.Channel(channel)) - int(y.Channel(channel))
	})
}

// colorMedian returns the median value of the given channel. For an even
// number of colors the median is the floored mean of the two middle values.
// Sorts the bucket by that channel as a side effect.
func (b *ColorBucket) colorMedian(channel ColorChannel) uint8 {
	b.sortColors(channel)

	mid := len(b.colors) / 2
	if len(b.colors)%2 == 0 {
		return mean([]uint8{b.colors[mid-1].Channel(channel), b.colors[mid].Channel(channel)})
	}
	return b.colors[mid].Channel(channel)
}

// channelMean returns the floored mean of one channel across the bucket.
func (b *ColorBucket) channelMean(channel ColorChannel) uint8 {
	return mean(b.channelValues(channel))
}

// colorMean reduces the bucket to one representative color, averaging each
// channel independently.
func (b *ColorBucket) colorMean() Color {
	return Color{
		R: b.channelMean(ChannelR),
		G: b.channelMean(ChannelG),
		B: b.channelMean(ChannelB),
		A: b.channelMean(ChannelA),
	}
}

func (b *ColorBucket) channelValues(channel ColorChannel) []uint8 {
	values := make([]uint8, len(b.colors))
	for i, c := range b.colors {
		values[i] = c.Channel(channel)
	}
	return values
}
