package translator

import (
	"regexp"
	"strings"
	"testing"
)

func TestAssignment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "literal",
			input: "a=1 ",
			want: lines(
				"\tMOVE #1,D0",
				"\tLEA A(PC),A0",
				"\tMOVE D0,(A0)",
			),
		},
		{
			name:  "expression with precedence",
			input: "a=2+3*4 ",
			want: lines(
				"\tMOVE #2,D0",
				"\tMOVE D0,-(SP)",
				"\tMOVE #3,D0",
				"\tMOVE D0,-(SP)",
				"\tMOVE #4,D0",
				"\tMULS (SP)+,D0",
				"\tADD (SP)+,D0",
				"\tLEA A(PC),A0",
				"\tMOVE D0,(A0)",
			),
		},
		{
			name:  "multi-character target",
			input: "total=x+y ",
			want: lines(
				"\tMOVE X(PC),D0",
				"\tMOVE D0,-(SP)",
				"\tMOVE Y(PC),D0",
				"\tADD (SP)+,D0",
				"\tLEA TOTAL(PC),A0",
				"\tMOVE D0,(A0)",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Assignment(tt.input)
			if err != nil {
				t.Fatalf("Assignment failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("wrong output for %q.\ngot:\n%swant:\n%s", tt.input, got, tt.want)
			}
		})
	}
}

func TestAssignmentErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"missing equals", "a2 ", "= Expected"},
		{"digit target", "1=2 ", "Name Expected"},
		{"empty input", "", "Name Expected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assignment(tt.input)
			if err == nil || err.Error() != tt.wantErr {
				t.Fatalf("Assignment(%q) error = %v, want %q", tt.input, err, tt.wantErr)
			}
		})
	}
}

// The driver leaves the first unconsumed character in the lookahead, so
// a caller can demand its own terminator after the translation.
func TestAssignmentLeavesTrailingLookahead(t *testing.T) {
	var out strings.Builder
	tr, err := New(strings.NewReader("a=1+2\n"), &out)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := tr.Assignment(); err != nil {
		t.Fatalf("Assignment failed: %v", err)
	}
	if tr.Look() != '\n' {
		t.Errorf("Look() = %q, want '\\n'", tr.Look())
	}
}

// Lines emitted before a failure stay on the output.
func TestPartialOutputSurvivesFailure(t *testing.T) {
	got, err := Assignment("a=1+")
	if err == nil {
		t.Fatal("expected failure")
	}
	want := lines(
		"\tMOVE #1,D0",
		"\tMOVE D0,-(SP)",
	)
	if got != want {
		t.Errorf("partial output = %q, want %q", got, want)
	}
}

var labelRef = regexp.MustCompile(`\bL[0-9]+\b`)

// Every program: label definitions are unique, every referenced label is
// defined somewhere, and the counter never hands out a name twice even
// across deeply nested constructs.
func TestLabelDiscipline(t *testing.T) {
	programs := []string{
		"pbee",
		"wx ee",
		"ix ly ee",
		"fi=2 5x ee",
		"d3x ee",
		"rx ue",
		"pwbebee",
		"pibeee",
		"wiwx e ly e e e",
		"ppprx ubebebee",
	}

	for _, src := range programs {
		got, err := Program(src)
		if err != nil {
			t.Fatalf("Program(%q) failed: %v", src, err)
		}

		defined := map[string]int{}
		var referenced []string
		for _, line := range strings.Split(strings.TrimSuffix(got, "\n"), "\n") {
			if strings.HasSuffix(line, ":") {
				defined[strings.TrimSuffix(line, ":")]++
				continue
			}
			referenced = append(referenced, labelRef.FindAllString(line, -1)...)
		}

		for label, n := range defined {
			if n != 1 {
				t.Errorf("%q: label %s defined %d times:\n%s", src, label, n, got)
			}
		}
		for _, label := range referenced {
			if defined[label] != 1 {
				t.Errorf("%q: label %s referenced but not defined:\n%s", src, label, got)
			}
		}
	}
}

func TestLabelGenerator(t *testing.T) {
	tr := newSession(t, "")
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		l := tr.newLabel()
		if seen[l] {
			t.Fatalf("label %s handed out twice", l)
		}
		seen[l] = true
	}
	if !seen["L0"] || !seen["L99"] {
		t.Errorf("labels did not count up from L0")
	}
}

func TestProgramEmitsEnd(t *testing.T) {
	got, err := Program("e")
	if err != nil {
		t.Fatalf("Program failed: %v", err)
	}
	if got != "\tEND\n" {
		t.Errorf("empty program output = %q, want \"\\tEND\\n\"", got)
	}
}
