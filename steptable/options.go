package steptable

// DefaultSizes is the capacity ladder used when no WithSizes option is given.
var DefaultSizes = []int{
	5, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593, 49157, 98317, 196613,
	393241, 786433, 1572869,
}

type config struct {
	sizes        []int
	rehashOnGrow bool
	logf         func(format string, args ...any)
}

// Option configures a Table.
type Option func(*config)

// WithSizes sets the capacity ladder. The first entry is the initial capacity.
func WithSizes(sizes ...int) Option {
	return func(c *config) {
		c.sizes = append([]int(nil), sizes...)
	}
}

// WithRehashOnGrow makes growth re-insert every live entry through the probe sequence of the
// new capacity. Without it entries keep their slot index when the table grows.
func WithRehashOnGrow(rehash bool) Option {
	return func(c *config) {
		c.rehashOnGrow = rehash
	}
}

// WithLogf sets the function receiving growth events.
func WithLogf(logf func(format string, args ...any)) Option {
	return func(c *config) {
		c.logf = logf
	}
}

func defaultConfig() config {
	return config{
		sizes: DefaultSizes,
		logf:  func(string, ...any) {},
	}
}
