package strata

import (
	"errors"
	"unsafe"
)

// Reinterpretation failures. Each leaves the caller's buffer untouched, so
// no data is lost on the error path.
var (
	// ErrChannelCount is returned when a channel buffer's length is not a
	// multiple of four.
	ErrChannelCount = errors.New("strata: channel buffer length is not a multiple of 4")

	// ErrChannelCapacity is returned when a channel buffer's capacity is not
	// a multiple of four channels.
	ErrChannelCapacity = errors.New("strata: channel buffer capacity is not a multiple of 4")

	// ErrInvalidChannel is returned when a channel value is outside the
	// channel type's valid range.
	ErrInvalidChannel = errors.New("strata: channel value outside the valid range")
)

// checkChannels validates a channel buffer for reinterpretation as pixels.
func checkChannels[T Channel](chans []T) error {
	if len(chans)%4 != 0 {
		return ErrChannelCount
	}
	if cap(chans)%4 != 0 {
		return ErrChannelCapacity
	}
	for _, v := range chans {
		if !ValidChannel(v) {
			return ErrInvalidChannel
		}
	}
	return nil
}

// PixelsFromChannels reinterprets a flat channel buffer as a pixel buffer
// in place, without copying. The returned slice shares backing storage with
// chans, with length and capacity divided by four; on success the caller
// must treat ownership as transferred and stop using chans.
//
// It fails, leaving chans untouched, when the buffer's length or capacity is
// not a multiple of four channels, or when any channel value is outside the
// channel type's valid range. Ownership is all-or-nothing: either the whole
// buffer moves into the returned pixel slice, or it stays with the caller.
func PixelsFromChannels[T Channel](chans []T) ([]Pixel[T], error) {
	if err := checkChannels(chans); err != nil {
		return nil, err
	}
	if len(chans) == 0 && cap(chans) == 0 {
		return nil, nil
	}

	// Safe because Pixel[T] is four T values with no padding, so sizes,
	// alignment and element counts line up exactly.
	ptr := (*Pixel[T])(unsafe.Pointer(unsafe.SliceData(chans[:cap(chans)])))
	return unsafe.Slice(ptr, cap(chans)/4)[:len(chans)/4], nil
}

// ChannelsFromPixels reinterprets a pixel buffer as its flat channel buffer
// in place, without copying. The returned slice shares backing storage with
// pixels, with length and capacity multiplied by four. It cannot fail: every
// pixel is, by layout, four valid-or-checked channels.
func ChannelsFromPixels[T Channel](pixels []Pixel[T]) []T {
	if cap(pixels) == 0 {
		return nil
	}
	ptr := (*T)(unsafe.Pointer(unsafe.SliceData(pixels[:cap(pixels)])))
	return unsafe.Slice(ptr, cap(pixels)*4)[:len(pixels)*4]
}

// AsPixels returns a read-only view of a channel slice as a pixel slice, or
// ok=false if the slice fails the same validity preconditions as
// PixelsFromChannels. The view aliases chans; the caller keeps ownership.
func AsPixels[T Channel](chans []T) (view []Pixel[T], ok bool) {
	p, err := PixelsFromChannels(chans)
	if err != nil {
		return nil, false
	}
	return p, true
}

// pixelBytes reinterprets a pixel buffer as raw bytes in the channel type's
// native layout. Used by Image.Bytes for the codec boundary.
func pixelBytes[T Channel](pixels []Pixel[T]) []byte {
	if len(pixels) == 0 {
		return nil
	}
	var zero T
	n := len(pixels) * 4 * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(pixels))), n)
}
