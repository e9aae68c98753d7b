package implementation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	interfaces "gitlab.com/immunai1/jba.battery_alert/src/production/JBA.Repository/Interfaces"
)

func TestLookupCaseInsensitive(t *testing.T) {
	repo := NewStaticNameRepository()

	tests := []struct {
		name   string
		uuid   string
		label  string
		region interfaces.Region
		ok     bool
	}{
		{"lowercase israel", "uuid-1", "Israel Office - Room A", interfaces.RegionIsrael, true},
		{"uppercase israel", "UUID-1", "Israel Office - Room A", interfaces.RegionIsrael, true},
		{"mixed case us", "Uuid-4", "US Office - Room D", interfaces.RegionUS, true},
		{"unknown", "uuid-99", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, region, ok := repo.Lookup(tt.uuid)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, tt.region, region)
		})
	}
}

func TestLookupFromExplicitTables(t *testing.T) {
	repo := NewStaticNameRepositoryFromTables(
		map[string]string{"ABC-123": "Tel Aviv - War Room"},
		map[string]string{"DEF-456": "Boston - Lobby"},
	)

	label, region, ok := repo.Lookup("abc-123")
	assert.True(t, ok)
	assert.Equal(t, "Tel Aviv - War Room", label)
	assert.Equal(t, interfaces.RegionIsrael, region)

	label, region, ok = repo.Lookup("def-456")
	assert.True(t, ok)
	assert.Equal(t, "Boston - Lobby", label)
	assert.Equal(t, interfaces.RegionUS, region)
}
