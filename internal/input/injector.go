package input

// Injector is the low-level input-injection capability. The production
// implementation drives the local desktop; tests substitute a recorder.
type Injector interface {
	Move(x, y int)
	Click(button string)
	Scroll(deltaY int)
	KeyDown(key string)
	KeyUp(key string)
	KeyTap(key string)
}

// Apply executes translated ops against an injector, in order.
func Apply(inj Injector, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpMove:
			inj.Move(op.X, op.Y)
		case OpClick:
			inj.Click(op.Button)
		case OpScroll:
			inj.Scroll(op.ScrollY)
		case OpKeyDown:
			inj.KeyDown(op.Key)
		case OpKeyUp:
			inj.KeyUp(op.Key)
		case OpKeyTap:
			inj.KeyTap(op.Key)
		}
	}
}
