package scene

import (
	"github.com/plus3/shapeshow/ecs"
)

// ClockSystem advances the Clock singleton by the frame delta.
type ClockSystem struct {
	Clock ecs.Singleton[Clock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	clock := s.Clock.Get()
	clock.Delta = frame.DeltaTime
	clock.Elapsed += frame.DeltaTime
}

// SpinSystem turns every Spinner about +Y at Settings.SpinRate rad/s.
type SpinSystem struct {
	Clock    ecs.Singleton[Clock]
	Settings ecs.Singleton[Settings]
	Spinners ecs.Query[struct {
		*Spinner
		*Transform
	}]
}

func (s *SpinSystem) Execute(frame *ecs.UpdateFrame) {
	angle := s.Settings.Get().SpinRate * float32(s.Clock.Get().Delta)
	for e := range s.Spinners.Values() {
		e.Transform.RotateY(angle)
	}
}

// ShaderTimeSystem writes the elapsed time into every live material block,
// including blocks no longer attached to an entity.
type ShaderTimeSystem struct {
	Clock     ecs.Singleton[Clock]
	Materials ecs.Singleton[Materials]
}

func (s *ShaderTimeSystem) Execute(frame *ecs.UpdateFrame) {
	elapsed := float32(s.Clock.Get().Elapsed)
	for _, m := range s.Materials.Get().IterMut() {
		m.Time = elapsed
	}
}

// CameraControlSystem moves the camera vertically while Q/Down or E/Up are
// held, then re-aims it at its target.
type CameraControlSystem struct {
	Keys     KeyState
	Clock    ecs.Singleton[Clock]
	Settings ecs.Singleton[Settings]
	Cameras  ecs.Query[struct {
		*Camera
		*Transform
	}]
}

func (s *CameraControlSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Keys == nil {
		return
	}

	step := s.Settings.Get().CameraSpeed * float32(s.Clock.Get().Delta)
	var dy float32
	if s.Keys.AnyHeld(downKeys...) {
		dy -= step
	}
	if s.Keys.AnyHeld(upKeys...) {
		dy += step
	}

	for cam := range s.Cameras.Values() {
		cam.Transform.Translation[1] += dy
		cam.Transform.LookAt(cam.Camera.Target, cam.Camera.Up)
	}
}
