package atom

import (
	"strconv"

	"github.com/qRoC/Loobee-OldRepository/internal/debug"
)

// Ordering specifies how regular, non-atomic memory accesses are ordered
// around an atomic operation. The values follow the C11 __ATOMIC_* numbering.
//
// Go only exposes sequentially consistent atomic instructions, so every
// operation is executed with at least the requested ordering. The value is
// still validated against the operation kind.
type Ordering uint8

const (
	// OrderRelaxed imposes no ordering, only atomicity.
	OrderRelaxed Ordering = iota
	// OrderConsume orders loads that carry a data dependency on the value.
	OrderConsume
	// OrderAcquire prevents later accesses from moving before the load and
	// synchronizes with a release store of the same cell.
	OrderAcquire
	// OrderRelease prevents earlier accesses from moving after the store.
	OrderRelease
	// OrderAcqRel is both acquire and release, for read-modify-write.
	OrderAcqRel
	// OrderSeqCst is acquire-release plus a single total order of all
	// sequentially consistent operations.
	OrderSeqCst
)

var orderingNames = [...]string{
	OrderRelaxed: "relaxed",
	OrderConsume: "consume",
	OrderAcquire: "acquire",
	OrderRelease: "release",
	OrderAcqRel:  "acq_rel",
	OrderSeqCst:  "seq_cst",
}

// loadStrength ranks the load side of each ordering. A failed
// compare-exchange is a plain load, so its ordering is compared on this rank.
var loadStrength = [...]uint8{
	OrderRelaxed: 0,
	OrderConsume: 1,
	OrderAcquire: 2,
	OrderRelease: 0,
	OrderAcqRel:  2,
	OrderSeqCst:  3,
}

func (o Ordering) String() string {
	if o.Valid() {
		return orderingNames[o]
	}
	return "Ordering(" + strconv.Itoa(int(o)) + ")"
}

// Valid reports whether o is one of the six orderings.
func (o Ordering) Valid() bool { return o <= OrderSeqCst }

// Ordering returns o, so dynamic values can be passed where an Order is
// accepted.
func (o Ordering) Ordering() Ordering { return o }

// IsLoad reports whether o may be used for a load.
func (o Ordering) IsLoad() bool {
	return o == OrderRelaxed || o == OrderConsume || o == OrderAcquire || o == OrderSeqCst
}

// IsStore reports whether o may be used for a store.
func (o Ordering) IsStore() bool {
	return o == OrderRelaxed || o == OrderRelease || o == OrderSeqCst
}

// StrongerThan reports whether the load side of o is stronger than the load
// side of other. Both must be valid.
func (o Ordering) StrongerThan(other Ordering) bool {
	debug.Assert("StrongerThan", "invalid ordering", o.Valid() && other.Valid())
	return loadStrength[o] > loadStrength[other]
}

// ForLoad checks o against the load-compatible set and returns it as a
// LoadOrder. It panics if o cannot be used for a load.
func (o Ordering) ForLoad() LoadOrder {
	if !o.IsLoad() {
		debug.Failf("ForLoad", "%v is not a load ordering", o)
	}
	return dynamicLoad(o)
}

// ForStore checks o against the store-compatible set and returns it as a
// StoreOrder. It panics if o cannot be used for a store.
func (o Ordering) ForStore() StoreOrder {
	if !o.IsStore() {
		debug.Failf("ForStore", "%v is not a store ordering", o)
	}
	return dynamicStore(o)
}

// FailureOrder returns the strongest ordering a compare-exchange may use on
// failure when it uses success on success: release drops to relaxed and
// acquire-release drops to acquire.
func FailureOrder(success Order) LoadOrder {
	switch o := orderOf("FailureOrder", success); o {
	case OrderRelease:
		return Relaxed
	case OrderAcqRel:
		return Acquire
	default:
		return dynamicLoad(o)
	}
}

// Order is any of the six orderings. Exchange and the fetch operations
// accept every ordering.
type Order interface {
	Ordering() Ordering
}

// LoadOrder is an ordering legal for loads and for the failure side of a
// compare-exchange: Relaxed, Consume, Acquire or SeqCst.
type LoadOrder interface {
	Order
	loadOrder()
}

// StoreOrder is an ordering legal for stores: Relaxed, Release or SeqCst.
type StoreOrder interface {
	Order
	storeOrder()
}

type (
	relaxedOrder struct{}
	consumeOrder struct{}
	acquireOrder struct{}
	releaseOrder struct{}
	acqRelOrder  struct{}
	seqCstOrder  struct{}

	dynamicLoad  Ordering
	dynamicStore Ordering
)

// The marker orderings. Their types only satisfy LoadOrder or StoreOrder
// when the ordering is legal for that kind of access, so a misuse such as
// Store(p, v, Acquire) is rejected by the compiler.
var (
	Relaxed relaxedOrder
	Consume consumeOrder
	Acquire acquireOrder
	Release releaseOrder
	AcqRel  acqRelOrder
	SeqCst  seqCstOrder
)

func (relaxedOrder) Ordering() Ordering   { return OrderRelaxed }
func (consumeOrder) Ordering() Ordering   { return OrderConsume }
func (acquireOrder) Ordering() Ordering   { return OrderAcquire }
func (releaseOrder) Ordering() Ordering   { return OrderRelease }
func (acqRelOrder) Ordering() Ordering    { return OrderAcqRel }
func (seqCstOrder) Ordering() Ordering    { return OrderSeqCst }
func (o dynamicLoad) Ordering() Ordering  { return Ordering(o) }
func (o dynamicStore) Ordering() Ordering { return Ordering(o) }

func (relaxedOrder) loadOrder() {}
func (consumeOrder) loadOrder() {}
func (acquireOrder) loadOrder() {}
func (seqCstOrder) loadOrder()  {}
func (dynamicLoad) loadOrder()  {}

func (relaxedOrder) storeOrder() {}
func (releaseOrder) storeOrder() {}
func (seqCstOrder) storeOrder()  {}
func (dynamicStore) storeOrder() {}

func (o relaxedOrder) String() string { return o.Ordering().String() }
func (o consumeOrder) String() string { return o.Ordering().String() }
func (o acquireOrder) String() string { return o.Ordering().String() }
func (o releaseOrder) String() string { return o.Ordering().String() }
func (o acqRelOrder) String() string  { return o.Ordering().String() }
func (o seqCstOrder) String() string  { return o.Ordering().String() }
func (o dynamicLoad) String() string  { return o.Ordering().String() }
func (o dynamicStore) String() string { return o.Ordering().String() }

// orderOf resolves any Order to its Ordering, panicking on nil or out of
// range values.
func orderOf(op string, order Order) Ordering {
	debug.Assert(op, "nil ordering", order != nil)
	o := order.Ordering()
	if !o.Valid() {
		debug.Failf(op, "invalid ordering %v", o)
	}
	return o
}

func checkLoad(op string, order LoadOrder) {
	debug.Assert(op, "nil ordering", order != nil)
	if o := order.Ordering(); !o.IsLoad() {
		debug.Failf(op, "%v is not a load ordering", o)
	}
}

func checkStore(op string, order StoreOrder) {
	debug.Assert(op, "nil ordering", order != nil)
	if o := order.Ordering(); !o.IsStore() {
		debug.Failf(op, "%v is not a store ordering", o)
	}
}

// checkCompareExchange enforces the failure ordering rules: it must be a
// load ordering no stronger than the success ordering.
func checkCompareExchange(op string, success Order, failure LoadOrder) {
	s := orderOf(op, success)
	checkLoad(op, failure)
	if f := failure.Ordering(); f.StrongerThan(s) {
		debug.Failf(op, "failure ordering %v is stronger than success ordering %v", f, s)
	}
}
