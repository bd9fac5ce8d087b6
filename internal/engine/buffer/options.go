package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithCapacity preallocates room for n code points.
func WithCapacity(n int) Option {
	return func(b *Buffer) {
		if n > cap(b.values) {
			values := make([]uint32, len(b.values), n)
			copy(values, b.values)
			b.values = values
		}
	}
}

// WithContent sets the initial content. The slice is copied.
func WithContent(values []uint32) Option {
	return func(b *Buffer) {
		b.values = append(b.values[:0], values...)
	}
}
