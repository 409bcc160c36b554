package physics

import "fmt"

type EventKind int

const (
	EventCollectiblePicked EventKind = iota
	EventHitObstacle
	EventReachedGoal
	EventFellOffWorld
)

func (k EventKind) String() string {
	switch k {
	case EventCollectiblePicked:
		return "collectiblePicked"
	case EventHitObstacle:
		return "hitObstacle"
	case EventReachedGoal:
		return "reachedGoal"
	case EventFellOffWorld:
		return "fellOffWorld"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Terminal reports whether the event ends the current attempt.
func (k EventKind) Terminal() bool {
	return k != EventCollectiblePicked
}

// Event is emitted by Step. Index identifies the collectible for
// EventCollectiblePicked and is zero otherwise.
type Event struct {
	Kind  EventKind
	Index int
}

func (e Event) String() string {
	if e.Kind == EventCollectiblePicked {
		return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
	}
	return e.Kind.String()
}

type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpAir
)

func (k JumpKind) String() string {
	switch k {
	case JumpGround:
		return "ground"
	case JumpAir:
		return "air"
	}
	return "none"
}
