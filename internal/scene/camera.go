package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/utils"
)

// OrbitControl is the debug-only camera rig: yaw and pitch follow the
// pointer, the scroll wheel dollies. It prefers the global X11 pointer
// so the orbit keeps tracking while the window is unfocused; when that
// is unavailable it falls back to the window-local pointer.
type OrbitControl struct {
	Distance float64

	yaw    float64
	pitch  float64
	useX11 bool
}

func NewOrbitControl(distance float64) *OrbitControl {
	o := &OrbitControl{Distance: distance}
	if err := utils.InitX11(); err != nil {
		utils.Warn("Orbit: no X11 pointer, using window-local mouse: %v", err)
	} else {
		o.useX11 = true
	}
	return o
}

func (o *OrbitControl) Update() {
	var mx, my float64
	if o.useX11 {
		x, y, err := utils.GlobalPointer()
		if err != nil {
			o.useX11 = false
		} else {
			mx, my = float64(x), float64(y)
		}
	}
	if !o.useX11 {
		pos := rl.GetMousePosition()
		mx, my = float64(pos.X), float64(pos.Y)
	}

	w := float64(rl.GetScreenWidth())
	h := float64(rl.GetScreenHeight())
	if w <= 0 || h <= 0 {
		return
	}

	o.yaw = (mx/w - 0.5) * math.Pi
	o.pitch = (my/h - 0.5) * math.Pi * 0.5

	o.Distance -= float64(rl.GetMouseWheelMove()) * 0.5
	if o.Distance < 2 {
		o.Distance = 2
	}
}

// Apply positions the camera on its orbit, looking at the origin.
func (o *OrbitControl) Apply(cam *rl.Camera3D) {
	cp := math.Cos(o.pitch)
	cam.Position = rl.NewVector3(
		float32(o.Distance*cp*math.Sin(o.yaw)),
		float32(o.Distance*math.Sin(o.pitch)),
		float32(o.Distance*cp*math.Cos(o.yaw)),
	)
	cam.Target = rl.NewVector3(0, 0, 0)
}
