// Package sorter_test contains tests for the sorter package.
package sorter_test

import (
	"cmp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/fileserve/sorter"
)

func TestMakeFromStr(t *testing.T) {
	tests := []struct {
		name          string
		sortString    string
		allowedFields []string
		expected      sorter.SortOpts
	}{
		{
			name:          "empty string",
			sortString:    "",
			allowedFields: []string{"name", "modified_at"},
			expected:      nil,
		},
		{
			name:          "valid single sort option",
			sortString:    "name:asc",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "name", D: "asc"},
			),
		},
		{
			name:          "valid multiple sort options",
			sortString:    "name:asc,modified_at:desc",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "name", D: "asc"},
				sorter.Opt{F: "modified_at", D: "desc"},
			),
		},
		{
			name:          "invalid field not in allowed list",
			sortString:    "name:asc,age:desc",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "name", D: "asc"},
			),
		},
		{
			name:          "invalid direction",
			sortString:    "name:ascending,modified_at:desc",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "modified_at", D: "desc"},
			),
		},
		{
			name:          "invalid format missing colon",
			sortString:    "name_asc,modified_at:desc",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "modified_at", D: "desc"},
			),
		},
		{
			name:          "with spaces to trim",
			sortString:    " name : asc , modified_at : desc ",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "name", D: "asc"},
				sorter.Opt{F: "modified_at", D: "desc"},
			),
		},
		{
			name:          "mixed case direction",
			sortString:    "name:ASC,modified_at:DESC",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "name", D: "asc"},
				sorter.Opt{F: "modified_at", D: "desc"},
			),
		},
		{
			name:          "empty parts after splitting",
			sortString:    ",,name:asc,,modified_at:desc,,",
			allowedFields: []string{"name", "modified_at"},
			expected: sorter.Make(
				sorter.Opt{F: "name", D: "asc"},
				sorter.Opt{F: "modified_at", D: "desc"},
			),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := sorter.MakeFromStr(tc.sortString, tc.allowedFields...)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestMake(t *testing.T) {
	tests := []struct {
		name     string
		options  []sorter.Opt
		expected sorter.SortOpts
	}{
		{
			name:     "empty options",
			options:  []sorter.Opt{},
			expected: sorter.SortOpts{},
		},
		{
			name: "single option",
			options: []sorter.Opt{
				{F: "name", D: "asc"},
			},
			expected: sorter.SortOpts{
				{F: "name", D: "asc"},
			},
		},
		{
			name: "multiple options",
			options: []sorter.Opt{
				{F: "name", D: "asc"},
				{F: "modified_at", D: "desc"},
			},
			expected: sorter.SortOpts{
				{F: "name", D: "asc"},
				{F: "modified_at", D: "desc"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := sorter.Make(tc.options...)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

type record struct {
	Name string
	Size int64
}

func compareRecords(a, b record, field string) int {
	switch field {
	case "name":
		return strings.Compare(a.Name, b.Name)
	case "size":
		return cmp.Compare(a.Size, b.Size)
	default:
		return 0
	}
}

func TestApply(t *testing.T) {
	base := []record{
		{Name: "banana", Size: 3},
		{Name: "apple", Size: 5},
		{Name: "cherry", Size: 3},
	}

	tests := []struct {
		name     string
		opts     sorter.SortOpts
		expected []record
	}{
		{
			name: "no options leaves order untouched",
			opts: nil,
			expected: []record{
				{Name: "banana", Size: 3},
				{Name: "apple", Size: 5},
				{Name: "cherry", Size: 3},
			},
		},
		{
			name: "single field ascending",
			opts: sorter.Make(sorter.Opt{F: "name", D: sorter.Asc}),
			expected: []record{
				{Name: "apple", Size: 5},
				{Name: "banana", Size: 3},
				{Name: "cherry", Size: 3},
			},
		},
		{
			name: "single field descending",
			opts: sorter.Make(sorter.Opt{F: "size", D: sorter.Desc}),
			expected: []record{
				{Name: "apple", Size: 5},
				{Name: "banana", Size: 3},
				{Name: "cherry", Size: 3},
			},
		},
		{
			name: "secondary field breaks ties",
			opts: sorter.Make(
				sorter.Opt{F: "size", D: sorter.Asc},
				sorter.Opt{F: "name", D: sorter.Desc},
			),
			expected: []record{
				{Name: "cherry", Size: 3},
				{Name: "banana", Size: 3},
				{Name: "apple", Size: 5},
			},
		},
		{
			name: "unknown field is a stable no-op",
			opts: sorter.Make(sorter.Opt{F: "color", D: sorter.Asc}),
			expected: []record{
				{Name: "banana", Size: 3},
				{Name: "apple", Size: 5},
				{Name: "cherry", Size: 3},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]record, len(base))
			copy(items, base)

			sorter.Apply(items, tc.opts, compareRecords)
			assert.Equal(t, tc.expected, items)
		})
	}
}
