package domain

// Owned is the capability shared by every resource whose mutation is
// restricted to its creating user.
type Owned interface {
	OwnerID() int64
}
