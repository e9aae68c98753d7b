package interfaces

// Region identifies one of the static office groupings used for alert formatting
type Region string

const (
	RegionIsrael Region = "israel"
	RegionUS     Region = "us"
)

type NameRepository interface {
	// Lookup resolves a device identifier (case-insensitive) to its
	// human-readable label and region. ok is false for unknown identifiers.
	Lookup(uuid string) (label string, region Region, ok bool)
}
