package world

// Location is the sealed union of places an artifact or monster can be.
// Exactly one location value holds at any time; movement replaces the
// whole value, so the "exactly one of room/carrier/container/nowhere"
// invariant is enforced by the type rather than by convention.
type Location interface {
	isLocation()
}

// InRoom places an entity on the floor of a room.
type InRoom struct {
	RoomID int
}

// Carried places an artifact in a monster's inventory.
// The player is monster 0.
type Carried struct {
	MonsterID int
}

// Contained places an artifact inside a container artifact.
type Contained struct {
	ArtifactID int
}

// Nowhere marks an entity as absent from the world (destroyed, or not
// yet introduced).
type Nowhere struct{}

func (InRoom) isLocation()    {}
func (Carried) isLocation()   {}
func (Contained) isLocation() {}
func (Nowhere) isLocation()   {}
