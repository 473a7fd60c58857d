package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect  Rect
		edges Edges
		want  Rect
	}

	tests := map[string]tc{
		"uniform": {
			rect:  NewRect(0, 0, 10, 10),
			edges: EdgeAll(2),
			want:  NewRect(2, 2, 6, 6),
		},
		"trbl": {
			rect:  NewRect(5, 5, 20, 10),
			edges: EdgeTRBL(1, 2, 3, 4),
			want:  NewRect(9, 6, 14, 6),
		},
		"collapses to zero": {
			rect:  NewRect(0, 0, 3, 2),
			edges: EdgeAll(2),
			want:  NewRect(2, 2, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rect.Inset(tt.edges))
		})
	}
}

func TestRect_Intersect(t *testing.T) {
	a := NewRect(0, 0, 10, 10)

	assert.Equal(t, NewRect(5, 5, 5, 5), a.Intersect(NewRect(5, 5, 10, 10)))
	assert.True(t, a.Intersect(NewRect(20, 20, 5, 5)).IsEmpty())
	assert.True(t, a.Contains(9, 9))
	assert.False(t, a.Contains(10, 0))
}

func TestValue(t *testing.T) {
	type tc struct {
		value     Value
		available int
		fallback  int
		want      int
		str       string
	}

	tests := map[string]tc{
		"auto":           {value: Auto(), available: 100, fallback: 7, want: 7, str: "auto"},
		"zero is auto":   {value: Value{}, available: 100, fallback: 3, want: 3, str: "auto"},
		"fixed":          {value: Fixed(12), available: 100, fallback: 0, want: 12, str: "12"},
		"percent":        {value: Percent(25), available: 200, fallback: 0, want: 50, str: "25%"},
		"percent floors": {value: Percent(33.33), available: 100, fallback: 0, want: 33, str: "33.33%"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Resolve(tt.available, tt.fallback))
			assert.Equal(t, tt.str, tt.value.String())
		})
	}
}

func TestBox_Visible(t *testing.T) {
	open := Box{Rect: NewRect(0, 0, 10, 1)}
	assert.Equal(t, NewRect(0, 0, 20, 1), open.Visible(NewRect(0, 0, 20, 1)))

	clipped := Box{Clip: NewRect(0, 0, 10, 5), Clipped: true}
	assert.Equal(t, NewRect(0, 0, 10, 1), clipped.Visible(NewRect(0, 0, 20, 1)))
}
