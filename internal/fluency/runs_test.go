package fluency

import (
	"reflect"
	"testing"
)

func TestRunTracker(t *testing.T) {
	type run struct{ start, end int }

	tests := []struct {
		name  string
		hits  []bool
		flush bool
		want  []run
	}{
		{name: "no hits", hits: []bool{false, false, false}, flush: true, want: nil},
		{name: "single run closed by miss", hits: []bool{false, true, true, false}, flush: true, want: []run{{1, 2}}},
		{name: "run open at end needs flush", hits: []bool{false, true, true}, flush: true, want: []run{{1, 2}}},
		{name: "run open at end without flush is lost", hits: []bool{false, true, true}, flush: false, want: nil},
		{name: "two separate runs", hits: []bool{true, false, true, true, false}, flush: true, want: []run{{0, 0}, {2, 3}}},
		{name: "all hits is one run", hits: []bool{true, true, true}, flush: true, want: []run{{0, 2}}},
		{name: "single hit at end", hits: []bool{false, false, true}, flush: true, want: []run{{2, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []run
			tracker := runTracker{emit: func(start, end int) {
				got = append(got, run{start, end})
			}}
			for i, hit := range tt.hits {
				tracker.observe(i, hit)
			}
			if tt.flush {
				tracker.flush(len(tt.hits) - 1)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("runs = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRunTrackerFlushIsIdempotent(t *testing.T) {
	emitted := 0
	tracker := runTracker{emit: func(start, end int) { emitted++ }}
	tracker.observe(0, true)
	tracker.flush(0)
	tracker.flush(0)
	if emitted != 1 {
		t.Errorf("double flush emitted %d runs, want 1", emitted)
	}
}
