package ngau

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Deg is an angle in degrees.
//
// The zero value is the zero angle. There is no range restriction, a Deg may
// hold values beyond a full turn, negative values, NaN or infinity.
type Deg struct {
	value float32
}

// NewDeg wraps f, which is expected to be in degrees. No conversion is performed.
func NewDeg(f float32) Deg {
	return Deg{value: f}
}

// DegFromRad converts an angle in radians to degrees.
func DegFromRad(rad Rad) Deg {
	return Deg{value: rad.value * (180 / math32.Pi)}
}

// Value returns the wrapped float32.
func (d Deg) Value() float32 {
	return d.value
}

// Rad converts the angle to radians.
func (d Deg) Rad() Rad {
	return RadFromDeg(d)
}

func (d Deg) Neg() Deg {
	return Deg{value: -d.value}
}

func (d Deg) Add(other Deg) Deg {
	d.value += other.value
	return d
}

func (d *Deg) AddAssign(other Deg) {
	d.value += other.value
}

func (d Deg) Sub(other Deg) Deg {
	d.value -= other.value
	return d
}

func (d *Deg) SubAssign(other Deg) {
	d.value -= other.value
}

// Mul scales the angle by a number. There is intentionally no way to
// multiply two angles.
func (d Deg) Mul(scalar float32) Deg {
	d.value *= scalar
	return d
}

func (d *Deg) MulAssign(scalar float32) {
	d.value *= scalar
}

// Div scales the angle down by a number.
func (d Deg) Div(scalar float32) Deg {
	d.value /= scalar
	return d
}

func (d *Deg) DivAssign(scalar float32) {
	d.value /= scalar
}

// DivAngle divides by another angle, which gives a ratio.
// Dividing by a zero angle yields infinity or NaN.
func (d Deg) DivAngle(other Deg) float32 {
	return d.value / other.value
}

// Rem returns the remainder of dividing the angle by a number.
// The sign of the result follows the angle, see math.Mod.
func (d Deg) Rem(scalar float32) Deg {
	return Deg{value: math32.Mod(d.value, scalar)}
}

func (d *Deg) RemAssign(scalar float32) {
	d.value = math32.Mod(d.value, scalar)
}

// RemAngle returns the remainder of dividing by another angle as a plain number.
// The sign of the result follows d, so -450° rem 360° is -90, not 270.
func (d Deg) RemAngle(other Deg) float32 {
	return math32.Mod(d.value, other.value)
}

// Equal reports whether both angles hold the same value. This is the same
// as comparing with ==, and is false if either value is NaN.
func (d Deg) Equal(other Deg) bool {
	return d.value == other.value
}

func (d Deg) Less(other Deg) bool {
	return d.value < other.value
}

func (d Deg) LessOrEqual(other Deg) bool {
	return d.value <= other.value
}

func (d Deg) Greater(other Deg) bool {
	return d.value > other.value
}

func (d Deg) GreaterOrEqual(other Deg) bool {
	return d.value >= other.value
}

func (d Deg) String() string {
	return fmt.Sprintf("%v°", d.value)
}

// GoString makes %#v print the same as %v.
func (d Deg) GoString() string {
	return d.String()
}
