package tuesday

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseDIMACS(t *testing.T) {
	for _, tt := range []struct {
		text string
		want [][]int
	}{
		{
			text: `
c Trivial
p cnf 1 1
1 0
`,
			want: [][]int{{1}},
		},
		{
			text: `
c Empty clauses
p cnf 3 5
1 3 0 0 -3 0
0 -2 -1
`,
			want: [][]int{{1, 3}, {}, {-3}, {}, {-2, -1}},
		},
		{
			text: `
c Missing problem line
1 2 0
-2 3
`,
			want: [][]int{{1, 2}, {-2, 3}},
		},
		{
			text: `
c Clause spanning lines
p cnf 4 3
1 3 -4 0
4 0 2
-3
`,
			want: [][]int{{1, 3, -4}, {4}, {2, -3}},
		},
	} {
		text := strings.TrimSpace(tt.text)
		name := strings.TrimPrefix(text[:strings.IndexByte(text, '\n')], "c ")
		t.Run(name, func(t *testing.T) {
			got, err := ParseDIMACS(strings.NewReader(text))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(got, tt.want, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("ParseDIMACS (-got, +want):\n%s", diff)
			}
		})
	}
}

func TestParseDIMACSErrors(t *testing.T) {
	for _, text := range []string{
		"p cnf 1 1\np cnf 1 1\n1 0",
		"1 0\np cnf 1 1",
		"p dnf 1 1\n1 0",
		"p cnf 1 1\n2 0",
		"p cnf 2 2\n1 0",
		"p cnf 1\n1 0",
		"x y z",
	} {
		if _, err := ParseDIMACS(strings.NewReader(text)); err == nil {
			t.Errorf("no error for %q", text)
		}
	}
}

func TestWriteDIMACSRoundTrip(t *testing.T) {
	problem := [][]int{{1, 3, -4}, {4}, {2, -3}, {-1, -2}}
	var b strings.Builder
	if err := WriteDIMACS(&b, problem); err != nil {
		t.Fatal(err)
	}
	got, err := ParseDIMACS(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("reparsing written output: %s\n\n%s", err, b.String())
	}
	if diff := cmp.Diff(got, problem); diff != "" {
		t.Fatalf("round trip (-got, +want):\n%s", diff)
	}
}

func TestNewClauseSetRejectsZero(t *testing.T) {
	if _, err := NewClauseSet([][]int{{1, 0, 2}}); err == nil {
		t.Fatal("zero literal accepted")
	}
}
