package species

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

func TestDefault_Labels(t *testing.T) {
	t.Parallel()

	c := Default()
	assert.Equal(t, []string{"มะแขว่น", "สะเดา", "สะแล", "นางแลว", "ผักเผ็ด", "ขี้หูด"}, c.Labels())
	assert.Len(t, c.All(), 6)
}

func TestCatalog_Lookup(t *testing.T) {
	t.Parallel()

	c := Default()

	tests := []struct {
		name      string
		label     string
		wantOK    bool
		wantSci   string
		wantThai  string
		wantImage string
	}{
		{name: "makwaen", label: "มะแขว่น", wantOK: true, wantSci: "Zanthoxylum limonella", wantThai: "มะแขว่น", wantImage: "/images/makwaen1.png"},
		{name: "kheehud thai name differs", label: "ขี้หูด", wantOK: true, wantSci: "Senna tora", wantThai: "ผักขี้หูด", wantImage: "/images/kheehud1.png"},
		{name: "unknown", label: "Unknown", wantOK: false},
		{name: "empty", label: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, ok := c.Lookup(tt.label)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantOK, c.Known(tt.label))
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.label, s.ClassName)
			assert.Equal(t, tt.wantSci, s.ScientificName)
			assert.Equal(t, tt.wantThai, s.ThaiName)
			require.Len(t, s.Images, 3)
			assert.Equal(t, tt.wantImage, s.Images[0])
		})
	}
}

func TestCatalog_LookupReturnsCopy(t *testing.T) {
	t.Parallel()

	c := Default()
	s, ok := c.Lookup("สะเดา")
	require.True(t, ok)
	s.Images[0] = "changed"

	again, _ := c.Lookup("สะเดา")
	assert.Equal(t, "/images/sadao1.png", again.Images[0])
}

func TestNewCatalog_DuplicateKeepsPosition(t *testing.T) {
	t.Parallel()

	c := NewCatalog(
		model.Species{ClassName: "a", ScientificName: "first"},
		model.Species{ClassName: "b"},
		model.Species{ClassName: "a", ScientificName: "second"},
	)

	assert.Equal(t, []string{"a", "b"}, c.Labels())
	s, _ := c.Lookup("a")
	assert.Equal(t, "second", s.ScientificName)
}
