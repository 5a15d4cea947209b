// Package models defines the domain records tracked by techjobs: employers,
// jobs and skills. Every record composes Entity for its identity and name.
package models

// Entity is the identity shared by every persisted record.
// ID is assigned by the store and must not be changed afterwards.
type Entity struct {
	// ID is zero until the record has been saved.
	ID int `json:"id"`
	// Name is the display name of the record.
	Name string `json:"name" validate:"notblank,max=80"`
}

// Saved reports whether the store has assigned an ID.
func (e *Entity) Saved() bool {
	return e != nil && e.ID != 0
}

// Equal compares identities by ID. Unsaved entities share the zero ID, so
// they are only equal to themselves.
func (e *Entity) Equal(other *Entity) bool {
	if e == other {
		return true
	}
	if !e.Saved() || !other.Saved() {
		return false
	}
	return e.ID == other.ID
}

func (e *Entity) String() string {
	if e == nil {
		return ""
	}
	return e.Name
}
