package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsdiff/opsdiff/internal/models"
	"github.com/opsdiff/opsdiff/internal/patterns"
)

func blockWithHeader(header string) *models.Block {
	return &models.Block{
		Kind:   models.BlockKindPlain,
		Header: models.Line{Number: 1, Text: header},
	}
}

func TestExtract_SpecificMatchers(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
	}{
		{"cisco interface", "GigabitEthernet1/0/1 is up, line protocol is up", "GigabitEthernet1/0/1"},
		{"short interface", "Gi1/0/24 connected 1 a-full a-1000", "Gi1/0/24"},
		{"svi", "Vlan10 state is up", "Vlan10"},
		{"routeros interface", "ether1 link ok", "ether1"},
		{"route", "O     10.0.0.0/24 [110/2] via 192.168.1.1", "10.0.0.0/24"},
		{"bgp neighbor", "BGP neighbor is 203.0.113.5, remote AS 65001", "203.0.113.5"},
		{"bare neighbor row", "203.0.113.9     4 65002   8423   8425", "203.0.113.9"},
		{"mac entry", "Internet  10.0.0.9 aabb.ccdd.eeff ARPA", "aabb.ccdd.eeff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewExtractor(patterns.NewDefaultRepository())
			assert.Equal(t, tc.expected, e.Extract(blockWithHeader(tc.header)))
		})
	}
}

func TestExtract_GenericCompoundHeuristic(t *testing.T) {
	e := NewExtractor(patterns.NewDefaultRepository())

	assert.Equal(t, "VLAN 10", e.Extract(blockWithHeader("VLAN 10 configuration pending")))
	assert.Equal(t, "Peer 203.0.113.5", e.Extract(blockWithHeader("Peer 203.0.113.5 session detail")))
}

func TestExtract_UnknownFallbackIsSequentialPerExtractor(t *testing.T) {
	e := NewExtractor(patterns.NewDefaultRepository())

	assert.Equal(t, "Unknown Block 1", e.Extract(blockWithHeader("%%% !!!")))
	assert.Equal(t, "Unknown Block 2", e.Extract(blockWithHeader("### ???")))

	// a fresh extractor restarts the sequence: numbering is scoped to one
	// snapshot's segmentation output
	e2 := NewExtractor(patterns.NewDefaultRepository())
	assert.Equal(t, "Unknown Block 1", e2.Extract(blockWithHeader("%%% !!!")))
}

func TestExtract_TableBlockUsesSectionHeader(t *testing.T) {
	e := NewExtractor(patterns.NewDefaultRepository())

	table := &models.Block{
		Kind:          models.BlockKindTable,
		Header:        models.Line{Number: 2, Text: "Address         Age  MAC Address"},
		SectionHeader: "Vlan10 ARP entries",
	}
	assert.Equal(t, "Vlan10", e.Extract(table))
}

func TestExtract_TableBlockWithoutSectionHeaderFallsBack(t *testing.T) {
	e := NewExtractor(patterns.NewDefaultRepository())

	table := &models.Block{
		Kind:   models.BlockKindTable,
		Header: models.Line{Number: 1, Text: "%% %% %%"},
	}
	assert.Equal(t, "Unknown Block 1", e.Extract(table))
}
