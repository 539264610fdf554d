package strata

import "unsafe"

// Channel is the numeric contract for one color or alpha component of a
// pixel. Integer channels span their full representable range; the float32
// channel is native-normalized, meaning its valid range is [0, 1].
type Channel interface {
	uint8 | uint16 | float32
}

// ChannelMax returns the maximum valid value of the channel type as a
// float32. For integer channels this is the type's maximum representable
// value; for float32 it is 1, since that channel type is already normalized.
func ChannelMax[T Channel]() float32 {
	var zero T
	switch unsafe.Sizeof(zero) {
	case 1:
		return 255
	case 2:
		return 65535
	default:
		return 1
	}
}

// ChannelMin returns the minimum valid value of the channel type as a
// float32. It is zero for every supported channel type, but kept as an
// explicit per-type constant so the valid range never silently assumes
// "zero..type-max".
func ChannelMin[T Channel]() float32 {
	return 0
}

// ValidChannel reports whether v lies within the channel type's valid range.
// Every bit pattern of an integer channel is valid, so the check is only
// substantive for the float32 channel type.
func ValidChannel[T Channel](v T) bool {
	var zero T
	if unsafe.Sizeof(zero) != 4 {
		return true
	}
	f := float32(v)
	return f >= ChannelMin[T]() && f <= ChannelMax[T]()
}

// channelFromFloat converts a normalized [0,1] float back to the channel
// type by scaling to the type's maximum. The conversion truncates for
// integer channels, matching Convert and the Over operator.
func channelFromFloat[T Channel](f float32) T {
	return T(f * ChannelMax[T]())
}

// channelToFloat normalizes a channel value into [0,1].
func channelToFloat[T Channel](v T) float32 {
	return float32(v) / ChannelMax[T]()
}
