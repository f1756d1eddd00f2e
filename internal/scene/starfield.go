package scene

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Starfield is the decorative backdrop: points scattered on a distant
// sphere shell, each twinkling on its own phase. It has no coupling to
// the panel field.
type Starfield struct {
	stars   []star
	elapsed float64
}

type star struct {
	pos   rl.Vector3
	base  float64 // brightness in [0.4, 1]
	phase float64
}

// NewStarfield scatters count stars on a shell of the given radius.
func NewStarfield(count int, radius float64, rng *rand.Rand) *Starfield {
	s := &Starfield{stars: make([]star, count)}
	for i := range s.stars {
		// Uniform direction on the unit sphere.
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		r := math.Sqrt(1 - z*z)
		s.stars[i] = star{
			pos: rl.NewVector3(
				float32(r*math.Cos(theta)*radius),
				float32(r*math.Sin(theta)*radius),
				float32(z*radius),
			),
			base:  0.4 + rng.Float64()*0.6,
			phase: rng.Float64() * 2 * math.Pi,
		}
	}
	return s
}

func (s *Starfield) Update(dt float64) {
	s.elapsed += dt
}

func (s *Starfield) Draw() {
	for i := range s.stars {
		st := &s.stars[i]
		b := st.base * (0.75 + 0.25*math.Sin(s.elapsed*2+st.phase))
		v := uint8(b * 255)
		rl.DrawPoint3D(st.pos, rl.NewColor(v, v, v, 255))
	}
}
