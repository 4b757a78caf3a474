package write

import (
	"bytes"
	"strings"
	"testing"
)

type constAdder struct {
	iter int
}

func (c *constAdder) AppendWriteData(v []*Value) []*Value {
	v = append(v, &Value{Heading: "Iter", Value: c.iter})
	v = append(v, &Value{Heading: "Obj", Value: 0.5})
	return v
}

func TestDisplayLogger(t *testing.T) {
	var buf bytes.Buffer
	adder := &constAdder{}
	d := NewDisplay([]Writer{{Writer: &buf, T: Logger}})
	d.AddDataAdder(adder)

	if err := d.Init(); err != nil {
		t.Fatalf("Error initializing display: %v", err)
	}
	for i := 1; i <= 3; i++ {
		adder.iter = i
		if err := d.Iterate(); err != nil {
			t.Fatalf("Error iterating display: %v", err)
		}
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("wrong number of rows. Expected: %v, Found %v", 4, len(lines))
	}
	if lines[0] != "Iter,Obj" {
		t.Errorf("wrong heading row: %q", lines[0])
	}
	if lines[1] != "1,5.000000e-01" {
		t.Errorf("wrong value row: %q", lines[1])
	}
}

func TestDisplayDisplayer(t *testing.T) {
	var buf bytes.Buffer
	adder := &constAdder{iter: 1}
	d := NewDisplay([]Writer{{Writer: &buf, T: Displayer}})
	d.AddDataAdder(adder)

	if err := d.Init(); err != nil {
		t.Fatalf("Error initializing display: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("Error iterating display: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("Error iterating display: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// Headings print on the first row only, then one aligned row per iteration.
	if len(lines) != 3 {
		t.Fatalf("wrong number of rows. Expected: %v, Found %v", 3, len(lines))
	}
	if !strings.HasPrefix(lines[0], "Iter") {
		t.Errorf("headings not written first: %q", lines[0])
	}
}

func TestDisplayNoWriters(t *testing.T) {
	d := NewDisplay(nil)
	d.AddDataAdder(&constAdder{})
	if err := d.Init(); err != nil {
		t.Fatalf("Error initializing display: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("Error iterating display: %v", err)
	}
}
