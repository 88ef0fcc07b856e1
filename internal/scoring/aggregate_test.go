package scoring

import "testing"

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		golfers []GolferRecord
		want    Totals
	}{
		{
			name: "empty selection",
			want: Totals{},
		},
		{
			name: "mixed scores",
			golfers: []GolferRecord{
				golfer("A", -4, 136, StatusNone),
				golfer("B", 2, 142, StatusNone),
				golfer("C", 100, 309, StatusCut),
			},
			want: Totals{TotalStrokes: 587, RelativeScore: 98},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := Aggregate(tt.golfers)
			second := Aggregate(tt.golfers)
			if first != tt.want {
				t.Errorf("Aggregate() = %+v, want %+v", first, tt.want)
			}
			if first != second {
				t.Errorf("Aggregate() not repeatable: %+v then %+v", first, second)
			}
		})
	}
}

func TestApplyProps(t *testing.T) {
	props := map[string]int{"Birdie Hunters": 6, "Sand Trappers": -2}

	tests := []struct {
		name         string
		team         string
		relative     int
		combo        PropCombination
		wantProp     int
		wantAdjusted int
	}{
		{"subtract props", "Birdie Hunters", -4, PropsSubtract, 6, -10},
		{"missing entry", "Fore Play", -4, PropsSubtract, 0, -4},
		{"negative props", "Sand Trappers", 3, PropsSubtract, -2, 5},
		{"add props", "Birdie Hunters", -4, PropsAdd, 6, 2},
		{"team name trimmed", " Birdie Hunters ", 0, PropsSubtract, 6, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop, adjusted := ApplyProps(tt.team, tt.relative, props, tt.combo)
			if prop != tt.wantProp || adjusted != tt.wantAdjusted {
				t.Errorf("ApplyProps() = (%d, %d), want (%d, %d)", prop, adjusted, tt.wantProp, tt.wantAdjusted)
			}
		})
	}

	if len(props) != 2 {
		t.Errorf("props table modified: %v", props)
	}
}
