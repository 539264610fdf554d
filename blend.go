package strata

// BlendFunc combines a background (dst) and foreground (src) pixel into one.
// Any function with this signature can be used as a custom blend strategy;
// the built-in strategies are [Replace] and [Over].
type BlendFunc[T Channel] func(dst, src Pixel[T]) Pixel[T]

// Replace returns the blend strategy where the foreground wins
// unconditionally.
func Replace[T Channel]() BlendFunc[T] {
	return func(_, src Pixel[T]) Pixel[T] { return src }
}

// Over returns the Porter-Duff "over" alpha compositing strategy.
func Over[T Channel]() BlendFunc[T] {
	return overOperator[T]
}

// overOperator composites src over dst. Both pixels are normalized to float
// channels, blended, and converted back to the native channel type by
// scaling by the type's maximum.
//
// When both inputs are fully transparent the weighted color average is 0/0,
// so the defined result is the default pixel (transparent black), not an
// error.
func overOperator[T Channel](dst, src Pixel[T]) Pixel[T] {
	fg := src.ToFloat()
	bg := dst.ToFloat()

	a2 := bg.A * (1 - fg.A)
	newAlpha := fg.A + a2

	if newAlpha == 0 {
		return Pixel[T]{}
	}

	return FromFloat[T](Pixel[float32]{
		R: (fg.R*fg.A + bg.R*a2) / newAlpha,
		G: (fg.G*fg.A + bg.G*a2) / newAlpha,
		B: (fg.B*fg.A + bg.B*a2) / newAlpha,
		A: newAlpha,
	})
}
