package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState is one frame of polled input in screen pixels.
type InputState struct {
	// Pointer is the mouse or first touch position.
	PointerX, PointerY float64
	PointerMoved       bool

	// PointerDown is a click or tap that started this frame, at Pointer.
	PointerDown bool
	// Tap reports that PointerDown came from a touch screen.
	Tap bool

	// Jump is Space or ArrowUp. Ignored while the window is unfocused.
	Jump bool

	// Tilt is in degrees, like a device orientation sensor. HasTilt is false
	// when no tilt source is present.
	Beta, Gamma float64
	HasTilt     bool

	ToggleDebug bool
}

// InputProvider polls the input devices once per Update.
type InputProvider interface {
	Poll() InputState
}

// maxStickTilt maps a full gamepad stick deflection to degrees of tilt.
const maxStickTilt = 45.0

// stickDeadZone ignores resting-stick noise.
const stickDeadZone = 0.15

// EbitenInput reads keyboard, mouse, touch and gamepad state from ebiten.
type EbitenInput struct {
	lastX, lastY float64
	touches      []ebiten.TouchID
	gamepads     []ebiten.GamepadID
}

// NewEbitenInput creates a new input provider
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{
		lastX:    math.NaN(),
		lastY:    math.NaN(),
		touches:  make([]ebiten.TouchID, 0, 4),
		gamepads: make([]ebiten.GamepadID, 0, 4),
	}
}

// Poll implements InputProvider
func (in *EbitenInput) Poll() InputState {
	var s InputState

	cx, cy := ebiten.CursorPosition()
	x, y := float64(cx), float64(cy)

	// touches win over the mouse
	in.touches = ebiten.AppendTouchIDs(in.touches[:0])
	if len(in.touches) > 0 {
		tx, ty := ebiten.TouchPosition(in.touches[0])
		x, y = float64(tx), float64(ty)
	}

	if x != in.lastX || y != in.lastY {
		s.PointerMoved = true
		in.lastX, in.lastY = x, y
	}
	s.PointerX, s.PointerY = x, y

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.PointerDown = true
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	if len(in.touches) > 0 {
		tx, ty := ebiten.TouchPosition(in.touches[0])
		s.PointerX, s.PointerY = float64(tx), float64(ty)
		s.PointerDown = true
		s.Tap = true
	}

	if ebiten.IsFocused() {
		s.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
	}

	s.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyF1)
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	in.gamepads = ebiten.AppendGamepadIDs(in.gamepads[:0])
	for _, id := range in.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		s.Gamma = deadZone(h) * maxStickTilt
		s.Beta = deadZone(v) * maxStickTilt
		s.HasTilt = true

		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			s.Jump = true
		}
		break
	}

	return s
}

func deadZone(v float64) float64 {
	if math.Abs(v) < stickDeadZone {
		return 0
	}
	return v
}
