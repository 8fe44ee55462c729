// Package options implements generic functional options.
//
// Packages expose typed With* constructors built on New or NoError and apply them to
// their configuration struct with Apply:
//
//	type Option = options.Option[*config]
//
//	func WithLimit(n int) Option {
//	    return options.New(func(c *config) error {
//	        if n < 0 {
//	            return errInvalidLimit
//	        }
//	        c.limit = n
//	        return nil
//	    })
//	}
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a function to the Option interface.
type Func[T any] func(T) error

func (f Func[T]) apply(target T) error {
	return f(target)
}

// New creates an option from a function that may reject its input.
func New[T any](fn func(T) error) Func[T] {
	return Func[T](fn)
}

// NoError creates an option from a function that cannot fail.
func NoError[T any](fn func(T)) Func[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply applies opts to target in order and stops at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}
