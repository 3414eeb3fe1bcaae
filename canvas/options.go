package canvas

// Option configures a Context during creation.
//
// Example:
//
//	fonts := canvas.NewFontStore()
//	_ = fonts.AddFontFile("Inter.ttf", "Inter", canvas.FontOptions{})
//	dc := canvas.NewContext(800, 600, canvas.WithFonts(fonts))
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	fonts *FontStore
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		fonts: nil, // Will be created if nil
	}
}

// WithFonts sets the font store SetFont looks families up in. Stores may
// be shared between contexts.
func WithFonts(fs *FontStore) Option {
	return func(o *contextOptions) {
		o.fonts = fs
	}
}
