package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOrder(t *testing.T) {
	tests := []struct {
		filename string
		want     int
	}{
		{"1.value_proposition.md", 1},
		{"9.cost_structure.md", 9},
		{"12.extra.md", 12},
		{"007.bond.md", 7},
		{"value_proposition.md", UnorderedSentinel},
		{"1-value.md", UnorderedSentinel},
		{"v1.notes.md", UnorderedSentinel},
		{".md", UnorderedSentinel},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractOrder(tt.filename))
		})
	}
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  string
		want     string
	}{
		{"h1 wins", "1.a.md", "# Value Proposition\n\nbody", "Value Proposition"},
		{"icon stripped", "1.a.md", "# 🎯 Value Proposition  \n", "Value Proposition"},
		{"first h1 only", "1.a.md", "intro\n# First\n# Second\n", "First"},
		{"h2 ignored", "2.customer_segments.md", "## Not a title\n", "Customer Segments"},
		{"filename fallback", "3.key_partners.md", "no heading here", "Key Partners"},
		{"fallback without prefix", "cost_structure.md", "", "Cost Structure"},
		{"prefix with space", "4. revenue_streams.md", "", "Revenue Streams"},
		{"existing capitals kept", "5.KPI_overview.md", "", "KPI Overview"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTitle(tt.filename, tt.content))
		})
	}
}

func TestIDFromFilename(t *testing.T) {
	assert.Equal(t, "1.value_proposition", IDFromFilename("1.value_proposition.md"))
	assert.Equal(t, "1.-value-proposition", IDFromFilename("1. Value  Proposition.md"))
	assert.Equal(t, "notes", IDFromFilename("NOTES.md"))
}

func TestNew(t *testing.T) {
	s := New("2.customer_segments.md", "# 👥 Customer Segments\n\n- SMEs\n")
	assert.Equal(t, Section{
		ID:       "2.customer_segments",
		Title:    "Customer Segments",
		Content:  "# 👥 Customer Segments\n\n- SMEs\n",
		Filename: "2.customer_segments.md",
		Order:    2,
	}, s)
}

func TestSortByOrder_StableAscending(t *testing.T) {
	in := []Section{
		{ID: "c", Order: 9},
		{ID: "x", Order: UnorderedSentinel},
		{ID: "a", Order: 1},
		{ID: "y", Order: UnorderedSentinel},
		{ID: "b", Order: 2},
	}
	out := Sorted(in)

	ids := make([]string, len(out))
	for i, s := range out {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"a", "b", "c", "x", "y"}, ids)
	// Input untouched.
	assert.Equal(t, "c", in[0].ID)
}

func TestStore_Lookup(t *testing.T) {
	st := NewStore([]Section{
		{ID: "2.b", Order: 2},
		{ID: "1.a", Order: 1},
	})
	require.Equal(t, 2, st.Len())
	assert.Equal(t, "1.a", st.All()[0].ID)

	s, ok := st.ByOrder(2)
	require.True(t, ok)
	assert.Equal(t, "2.b", s.ID)

	_, ok = st.ByOrder(5)
	assert.False(t, ok)
}

func TestStore_AllReturnsCopy(t *testing.T) {
	st := NewStore([]Section{{ID: "a", Order: 1}})
	all := st.All()
	all[0].ID = "mutated"
	assert.Equal(t, "a", st.All()[0].ID)
}
