package jbamodels

// RoomResource represents a room assignment reported by the Joan portal
type RoomResource struct {
	Name string `json:"name"`
}

// Device represents a Joan display device as returned by the portal API
type Device struct {
	UUID          string         `json:"uuid"`
	Battery       *int           `json:"battery"`
	RoomResources []RoomResource `json:"roomResources"`
}

// RoomName returns the first room resource name, or empty if none is assigned
func (d Device) RoomName() string {
	if len(d.RoomResources) == 0 {
		return ""
	}
	return d.RoomResources[0].Name
}
