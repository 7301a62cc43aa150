package ngau

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
)

// Rad is an angle in radians.
//
// Like Deg, the zero value is the zero angle and there is no range restriction.
type Rad struct {
	value float32
}

// NewRad wraps f, which is expected to be in radians.
func NewRad(f float32) Rad {
	return Rad{value: f}
}

// RadFromDeg converts an angle in degrees to radians.
func RadFromDeg(deg Deg) Rad {
	return Rad{value: deg.value * (math32.Pi / 180)}
}

// FullTurn returns 2π, the angle of one full rotation.
func FullTurn() Rad {
	return Rad{value: 2 * math32.Pi}
}

// Value returns the wrapped float32.
func (r Rad) Value() float32 {
	return r.value
}

// Deg converts the angle to degrees.
func (r Rad) Deg() Deg {
	return DegFromRad(r)
}

// The trigonometric helpers below take a plain float32 and only label their
// result as radians.
//
// Sine and cosine go through float64, math32 loses precision in its argument
// reduction once |f| grows past a few hundred.

func Sin(f float32) Rad {
	return Rad{value: float32(math.Sin(float64(f)))}
}

func Cos(f float32) Rad {
	return Rad{value: float32(math.Cos(float64(f)))}
}

func Tan(f float32) Rad {
	return Rad{value: math32.Tan(f)}
}

// SinCos returns Sin(f) and Cos(f) computed in one go.
func SinCos(f float32) (sin, cos Rad) {
	s, c := math.Sincos(float64(f))
	return Rad{value: float32(s)}, Rad{value: float32(c)}
}

func Asin(f float32) Rad {
	return Rad{value: math32.Asin(f)}
}

func Acos(f float32) Rad {
	return Rad{value: math32.Acos(f)}
}

func Atan(f float32) Rad {
	return Rad{value: math32.Atan(f)}
}

// Atan2 returns the arc tangent of y/x, using the signs of both
// to determine the quadrant.
func Atan2(y, x float32) Rad {
	return Rad{value: math32.Atan2(y, x)}
}

func (r Rad) Neg() Rad {
	return Rad{value: -r.value}
}

func (r Rad) Add(other Rad) Rad {
	r.value += other.value
	return r
}

func (r *Rad) AddAssign(other Rad) {
	r.value += other.value
}

func (r Rad) Sub(other Rad) Rad {
	r.value -= other.value
	return r
}

func (r *Rad) SubAssign(other Rad) {
	r.value -= other.value
}

// Mul scales the angle by a number.
func (r Rad) Mul(scalar float32) Rad {
	r.value *= scalar
	return r
}

func (r *Rad) MulAssign(scalar float32) {
	r.value *= scalar
}

// Div scales the angle down by a number.
func (r Rad) Div(scalar float32) Rad {
	r.value /= scalar
	return r
}

func (r *Rad) DivAssign(scalar float32) {
	r.value /= scalar
}

// DivAngle divides by another angle, which gives a ratio.
func (r Rad) DivAngle(other Rad) float32 {
	return r.value / other.value
}

// Rem returns the remainder of dividing the angle by a number,
// with the sign of the angle.
func (r Rad) Rem(scalar float32) Rad {
	return Rad{value: math32.Mod(r.value, scalar)}
}

func (r *Rad) RemAssign(scalar float32) {
	r.value = math32.Mod(r.value, scalar)
}

// RemAngle returns the remainder of dividing by another angle as a plain number.
func (r Rad) RemAngle(other Rad) float32 {
	return math32.Mod(r.value, other.value)
}

// Equal is the same as ==.
func (r Rad) Equal(other Rad) bool {
	return r.value == other.value
}

func (r Rad) Less(other Rad) bool {
	return r.value < other.value
}

func (r Rad) LessOrEqual(other Rad) bool {
	return r.value <= other.value
}

func (r Rad) Greater(other Rad) bool {
	return r.value > other.value
}

func (r Rad) GreaterOrEqual(other Rad) bool {
	return r.value >= other.value
}

func (r Rad) String() string {
	return fmt.Sprintf("%v rad", r.value)
}

func (r Rad) GoString() string {
	return r.String()
}
