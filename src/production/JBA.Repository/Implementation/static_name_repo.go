package implementation

import (
	"strings"

	interfaces "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Repository/Interfaces"
)

// Sanitized device name tables. Replace with your own fleet internally.
var israelDevices = map[string]string{
	"uuid-1": "Israel Office - Room A",
	"uuid-2": "Israel Office - Room B",
	"uuid-3": "Israel Office - Room C",
}

var usDevices = map[string]string{
	"uuid-4": "US Office - Room D",
	"uuid-5": "US Office - Room E",
	"uuid-6": "US Office - Room F",
}

// StaticNameRepository resolves device identifiers against in-code name
// tables. The lookup maps are lower-cased once at construction and read-only
// afterwards.
type StaticNameRepository struct {
	israel map[string]string
	us     map[string]string
}

// NewStaticNameRepository creates a name repository from the built-in tables
func NewStaticNameRepository() *StaticNameRepository {
	return NewStaticNameRepositoryFromTables(israelDevices, usDevices)
}

// NewStaticNameRepositoryFromTables creates a name repository from explicit tables
func NewStaticNameRepositoryFromTables(israel, us map[string]string) *StaticNameRepository {
	r := &StaticNameRepository{
		israel: make(map[string]string, len(israel)),
		us:     make(map[string]string, len(us)),
	}
	for k, v := range israel {
		r.israel[strings.ToLower(k)] = v
	}
	for k, v := range us {
		r.us[strings.ToLower(k)] = v
	}
	return r
}

func (r *StaticNameRepository) Lookup(uuid string) (string, interfaces.Region, bool) {
	key := strings.ToLower(uuid)
	if label, ok := r.israel[key]; ok {
		return label, interfaces.RegionIsrael, true
	}
	if label, ok := r.us[key]; ok {
		return label, interfaces.RegionUS, true
	}
	return "", "", false
}
