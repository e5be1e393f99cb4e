package core

// Input accumulates pointer and key state from the events the scheduler pumps.
type Input struct {
	keys           map[Key]bool
	buttons        map[MouseButton]bool
	mouseX, mouseY int
}

func NewInput() *Input {
	return &Input{keys: map[Key]bool{}, buttons: map[MouseButton]bool{}}
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventPointerMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventPointerDown:
		in.mouseX, in.mouseY = e.X, e.Y
		in.buttons[e.Button] = true
	case EventPointerUp:
		in.mouseX, in.mouseY = e.X, e.Y
		in.buttons[e.Button] = false
	}
}

func (in *Input) IsKeyDown(k Key) bool            { return in.keys[k] }
func (in *Input) IsButtonDown(b MouseButton) bool { return in.buttons[b] }
func (in *Input) Pointer() (x, y int)             { return in.mouseX, in.mouseY }
