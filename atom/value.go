package atom

// noCopy lets go vet's copylocks check catch copies of a cell.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Value is a scalar cell meant to be embedded in a larger structure. Its
// methods use SeqCst; Ptr gives access to the cell for the functions that
// take an explicit ordering. A Value must not be copied after first use.
type Value[T Scalar] struct {
	noCopy noCopy
	v      T
}

// Ptr returns the address of the underlying cell.
func (x *Value[T]) Ptr() *T { return &x.v }

func (x *Value[T]) Load() T { return Load(&x.v, SeqCst) }

func (x *Value[T]) Store(v T) { Store(&x.v, v, SeqCst) }

func (x *Value[T]) Exchange(v T) T { return Exchange(&x.v, v, SeqCst) }

func (x *Value[T]) CompareExchangeWeak(expected *T, desired T) bool {
	return CompareExchangeWeak(&x.v, expected, desired, SeqCst, SeqCst)
}

func (x *Value[T]) CompareExchangeStrong(expected *T, desired T) bool {
	return CompareExchangeStrong(&x.v, expected, desired, SeqCst, SeqCst)
}

// Int is a Value with the arithmetic and bitwise operations, all SeqCst.
type Int[T Integer] struct {
	Value[T]
}

func (x *Int[T]) FetchAndAdd(d T) T    { return FetchAndAdd(x.Ptr(), d, SeqCst) }
func (x *Int[T]) AddAndFetch(d T) T    { return AddAndFetch(x.Ptr(), d, SeqCst) }
func (x *Int[T]) FetchAndSub(d T) T    { return FetchAndSub(x.Ptr(), d, SeqCst) }
func (x *Int[T]) SubAndFetch(d T) T    { return SubAndFetch(x.Ptr(), d, SeqCst) }
func (x *Int[T]) FetchAndBitAnd(m T) T { return FetchAndBitAnd(x.Ptr(), m, SeqCst) }
func (x *Int[T]) BitAndAndFetch(m T) T { return BitAndAndFetch(x.Ptr(), m, SeqCst) }
func (x *Int[T]) FetchAndBitOr(m T) T  { return FetchAndBitOr(x.Ptr(), m, SeqCst) }
func (x *Int[T]) BitOrAndFetch(m T) T  { return BitOrAndFetch(x.Ptr(), m, SeqCst) }
func (x *Int[T]) FetchAndBitXor(m T) T { return FetchAndBitXor(x.Ptr(), m, SeqCst) }
func (x *Int[T]) BitXorAndFetch(m T) T { return BitXorAndFetch(x.Ptr(), m, SeqCst) }
