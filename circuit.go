package qshor

import (
	"fmt"
	"math/bits"
)

/*
CircuitSpec describes an order-finding circuit without lowering it to a
gate set: controlled modular-exponentiation of Base modulo Modulus,
conditioned on a PrecisionBits-wide phase-estimation register, followed
by an inverse Fourier transform on that register. Lowering is the
backend's business; this side of the boundary only needs the register
shape and the two scalars a compile report exposes.
*/
type CircuitSpec struct {
	Modulus       uint64
	Base          uint64
	PrecisionBits int
	TargetBits    int
}

/*
NewOrderCircuit builds the circuit description for finding the order of
a modulo n. A non-positive precisionBits selects the customary 2t+1
bits for a t-bit modulus, enough for the continued-fraction step to
resolve any period below n.
*/
func NewOrderCircuit(n, a uint64, precisionBits int) CircuitSpec {
	target := bits.Len64(n)
	if precisionBits <= 0 {
		precisionBits = 2*target + 1
	}
	return CircuitSpec{
		Modulus:       n,
		Base:          a,
		PrecisionBits: precisionBits,
		TargetBits:    target,
	}
}

// Width returns the total qubit count: both registers plus the two
// ancillas the modular adder needs.
func (c CircuitSpec) Width() int {
	return c.PrecisionBits + c.TargetBits + 2
}

func (c CircuitSpec) String() string {
	return fmt.Sprintf("order-finding(N=%d, a=%d, t=%d)", c.Modulus, c.Base, c.PrecisionBits)
}

/*
CompileReport carries the two integers the external transpiler exposes
after lowering a circuit: the width and depth of the compiled result.
They are consumed only as scalars by ErrorRateUpperBound.
*/
type CompileReport struct {
	Width int
	Depth int
}

// Volume is the width-depth product, a proxy for cumulative noise
// exposure.
func (r CompileReport) Volume() float64 {
	return float64(r.Width) * float64(r.Depth)
}

/*
Estimate predicts the compile report without invoking a transpiler,
using the standard resource figures for modular exponentiation: t
controlled multiplications, each O(n^2) gates deep on an n-bit target.
*/
func (c CircuitSpec) Estimate() CompileReport {
	depth := c.PrecisionBits * c.TargetBits * c.TargetBits
	if depth < 1 {
		depth = 1
	}
	return CompileReport{Width: c.Width(), Depth: depth}
}
