package cadastro

// Cloner allows form types to provide deep copy logic.
// Every Processor type parameter must implement it.
//
// Clone must return a copy whose mutation does not affect the receiver. Form
// types made only of strings can return the receiver value:
//
//	func (r Registration) Clone() Registration { return r }
//
// Types with slices, maps or pointers must copy them.
type Cloner[T any] interface {
	Clone() T
}
