package typeguard

import (
	"github.com/typeguard/validator/pool"
)

// Union returns a validator accepting values satisfying any branch, tried
// in order. When every branch rejects, the failure combines each branch's
// full message:
//
//	No validators were satisfied (<first>; <second>; ...)
//
// Every branch message is built even when an earlier one would already
// decide the outcome, keeping the combined text complete. Union adds no
// path segment of its own; branch messages carry their own qualification.
func Union(branches ...Validator) Validator {
	if len(branches) < 2 {
		panic("typeguard: Union requires at least two validators")
	}
	bs := make([]Validator, len(branches))
	copy(bs, branches)
	return unionValidator{branches: bs}
}

type unionValidator struct {
	branches []Validator
}

func (u unionValidator) Validate(v any) Result {
	errs := make([]*Error, 0, len(u.branches))
	for _, b := range u.branches {
		res := b.Validate(v)
		if res.Valid() {
			return OK()
		}
		errs = append(errs, res.Err())
	}
	pb := pool.AcquirePathBuilder()
	defer pb.Release()
	pb.WriteString("No validators were satisfied (")
	for i, err := range errs {
		if i > 0 {
			pb.WriteString("; ")
		}
		pb.WriteString(err.Message())
	}
	pb.WriteByte(')')
	return Invalid(pb.String())
}

// Intersection returns a validator requiring every branch to accept, in
// order, short-circuiting on the first rejection. The failing branch's
// error propagates untouched: no message combination and no path wrap,
// asymmetric with Union, since an intersection failure is attributable to
// one concrete branch.
func Intersection(branches ...Validator) Validator {
	if len(branches) < 2 {
		panic("typeguard: Intersection requires at least two validators")
	}
	bs := make([]Validator, len(branches))
	copy(bs, branches)
	return intersectionValidator{branches: bs}
}

type intersectionValidator struct {
	branches []Validator
}

func (iv intersectionValidator) Validate(v any) Result {
	for _, b := range iv.branches {
		if res := b.Validate(v); !res.Valid() {
			return res
		}
	}
	return OK()
}
