package dto_test

import (
	"testing"

	"hotelier/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "hotel_slug", Value: "seaside-inn", Operator: dto.FilterOperatorEq, Table: "rooms"},
			wantWhere: "rooms.hotel_slug = :hotel_slug",
			wantArgs:  map[string]any{"hotel_slug": "seaside-inn"},
		},
		{
			name:      "equality with custom arg name",
			filter:    dto.Filter{ArgName: "s", Field: "slug", Value: "x", Operator: dto.FilterOperatorEq},
			wantWhere: "slug = :s",
			wantArgs:  map[string]any{"s": "x"},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "slug", Operator: "between"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "hotel_slug", Value: "seaside-inn", Operator: dto.FilterOperatorEq, Table: "rooms"},
			dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "room_slug", Value: "deluxe", Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "room_title", Value: "Deluxe", Operator: dto.FilterOperatorEq},
				},
			},
			dto.Filter{Field: "ignored", Operator: "unknown"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(rooms.hotel_slug = :hotel_slug AND (room_slug = :room_slug AND room_title = :room_title))", where)
	assert.Equal(t, map[string]any{"hotel_slug": "seaside-inn", "room_slug": "deluxe", "room_title": "Deluxe"}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
