// Package gm (stands for geometry math) provides the 2d geometry primitives
// used by the dim2 rigid-body store.
//
// It includes a simple 2d vector type called Vec and a rotation type Rot
// holding a unit complex number.
//
// There is also a type named Rad to represent angle values in radian.
package gm
