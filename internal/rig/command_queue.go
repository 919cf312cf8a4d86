package rig

import "github.com/go-gl/mathgl/mgl32"

// CommandQueue buffers translation intents issued during a frame.
// It is drained exactly once per tick.
type CommandQueue struct {
	commands []MovementCommand
}

// Enqueue appends a command. The direction does not need to be normalized.
func (q *CommandQueue) Enqueue(directionX, directionY, scale float32) {
	q.commands = append(q.commands, MovementCommand{
		Direction: mgl32.Vec2{directionX, directionY},
		Scale:     scale,
	})
}

// Len returns the number of pending commands.
func (q *CommandQueue) Len() int {
	return len(q.commands)
}

// Pending returns a copy of the queued commands in FIFO order.
func (q *CommandQueue) Pending() []MovementCommand {
	out := make([]MovementCommand, len(q.commands))
	copy(out, q.commands)
	return out
}

// DrainAndApply sums every queued command into a displacement, clears the
// queue and returns the displaced anchor. Zero-length directions contribute
// nothing. Z is untouched.
func (q *CommandQueue) DrainAndApply(anchor mgl32.Vec3, speed, dt float32) mgl32.Vec3 {
	var delta mgl32.Vec2
	for _, cmd := range q.commands {
		length := cmd.Direction.Len()
		if length <= 1e-8 {
			continue
		}
		step := cmd.Direction.Mul(speed * cmd.Scale * dt / length)
		delta = delta.Add(step)
	}
	q.commands = q.commands[:0]

	return mgl32.Vec3{anchor.X() + delta.X(), anchor.Y() + delta.Y(), anchor.Z()}
}
