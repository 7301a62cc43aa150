// Package ngau provides typed angle values.
//
// There are two types, Deg and Rad, each wrapping a single float32. The unit
// is part of the type, so a value in degrees can not be passed where radians
// are expected without an explicit conversion through DegFromRad or RadFromDeg.
//
// Rad also carries thin wrappers around the float32 trigonometric functions,
// as those are defined in radians.
package ngau
