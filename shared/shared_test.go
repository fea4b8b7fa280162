package shared_test

import (
	"barber/shared"
	"barber/shared/dto"
	"reflect"
	"testing"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "catalog",
			expected: "catalog",
		},
		{
			name:     "ip key",
			prefix:   "public-booking",
			parts:    []string{"10.0.0.1"},
			expected: "public-booking:10.0.0.1",
		},
		{
			name:     "empty parts skipped",
			prefix:   "session",
			parts:    []string{"abc", "", "captcha"},
			expected: "session:abc:captcha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.parts...)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	tests := []struct {
		name     string
		id       any
		fieldID  string
		table    string
		expected dto.FilterGroup
	}{
		{
			name:    "numeric id",
			id:      int64(3),
			fieldID: "id",
			table:   "capsters",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    int64(3),
						Operator: dto.FilterOperatorEq,
						Table:    "capsters",
					},
				},
			},
		},
		{
			name:    "filter with empty table",
			id:      "456",
			fieldID: "id",
			table:   "",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "456",
						Operator: dto.FilterOperatorEq,
						Table:    "",
					},
				},
			},
		},
		{
			name:    "filter with uuid",
			id:      "550e8400-e29b-41d4-a716-446655440000",
			fieldID: "id",
			table:   "bookings",
			expected: dto.FilterGroup{
				Filters: []any{
					dto.Filter{
						Field:    "id",
						Value:    "550e8400-e29b-41d4-a716-446655440000",
						Operator: dto.FilterOperatorEq,
						Table:    "bookings",
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.FilterByID(tt.id, tt.fieldID, tt.table)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, result)
			}

			filter, ok := result.Filters[0].(dto.Filter)
			if !ok {
				t.Fatal("expected filter to be of type dto.Filter")
			}

			where, args := filter.GetWhereClause()
			if where != tt.table+"."+tt.fieldID+" = :"+tt.fieldID && where != tt.fieldID+" = :"+tt.fieldID {
				t.Errorf("unexpected where clause %q", where)
			}

			if args[tt.fieldID] != tt.id {
				t.Errorf("expected arg %v, got %v", tt.id, args[tt.fieldID])
			}
		})
	}
}
