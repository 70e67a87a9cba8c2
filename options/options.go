// Package options provides functional-option plumbing shared by ftpfetch types.
package options

// NewSessionOption interface contains functions that should be implemented by any
// custom option to qualify as a session option.
// Example:
// ```
//
//	type debugWriterOpt struct{ w io.Writer }
//	func (o *debugWriterOpt) Apply(s *Session) { s.debug = o.w }
//	func (o *debugWriterOpt) NewSessionOptionName() string {
//		return "debug writer"
//	}
//
// ```
type NewSessionOption[T any] interface {
	Apply(*T)
	NewSessionOptionName() string
}

// ApplyOptions applies options to the given target.
func ApplyOptions[T any](target *T, opts ...NewSessionOption[T]) {
	for _, o := range opts {
		o.Apply(target)
	}
}
