package buffer

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithEditHook sets the function called after every committed mutation.
func WithEditHook(hook EditHook) Option {
	return func(b *Buffer) {
		b.onEdit = hook
	}
}
