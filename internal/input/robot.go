package input

import (
	"github.com/go-vgo/robotgo"
)

// RobotInjector injects input into the local desktop via robotgo.
// Injection errors are dropped: a key the OS refuses is equivalent to a
// key that resolves to nothing.
type RobotInjector struct{}

func (RobotInjector) Move(x, y int) {
	robotgo.Move(x, y)
}

func (RobotInjector) Click(button string) {
	robotgo.Click(button, false)
}

func (RobotInjector) Scroll(deltaY int) {
	robotgo.Scroll(0, deltaY)
}

func (RobotInjector) KeyDown(key string) {
	_ = robotgo.KeyToggle(key, "down")
}

func (RobotInjector) KeyUp(key string) {
	_ = robotgo.KeyToggle(key, "up")
}

func (RobotInjector) KeyTap(key string) {
	_ = robotgo.KeyTap(key)
}
