package write

import (
	"fmt"
	"io"
	"strings"
)

type Type int

const (
	// Logger is a writer intended to save details of the search for future
	// postprocessing. The data is written as csv with one row per iteration
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the search.
	// Columns are aligned and headings are reprinted periodically
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

// headingInterval is the number of value rows printed between heading rows
// on a Displayer.
const headingInterval = 30

// Display writes one row per iteration to each of its writers, pulling the
// row contents from the registered DataAdders. A Display with no writers
// does nothing; the search routines are silent by default.
type Display struct {
	writers    []Writer
	dataAdders []DataAdder

	headings []string
	values   []string

	rowsSinceHeading int
}

func NewDisplay(writers []Writer) *Display {
	return &Display{writers: writers}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulate gets all of the values from the data adders and stores their
// string forms in display
func (d *Display) accumulate() {
	var vals []*Value
	for _, add := range d.dataAdders {
		vals = add.AppendWriteData(vals)
	}
	d.headings = d.headings[:0]
	d.values = d.values[:0]
	for _, v := range vals {
		d.headings = append(d.headings, v.Heading)
		d.values = append(d.values, valueToString(v.Value))
	}
}

// Init writes the csv heading row to the Logger writers. Displayer headings
// are written lazily by Iterate so that they align with the values.
func (d *Display) Init() error {
	if len(d.writers) == 0 {
		return nil
	}
	d.accumulate()
	d.rowsSinceHeading = headingInterval + 1
	for _, w := range d.writers {
		if w.T != Logger {
			continue
		}
		if _, err := io.WriteString(w, strings.Join(d.headings, ",")+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Iterate is the write action performed at every iteration of the search
func (d *Display) Iterate() error {
	if len(d.writers) == 0 {
		return nil
	}
	d.accumulate()

	writeHeadings := d.rowsSinceHeading > headingInterval
	if writeHeadings {
		d.rowsSinceHeading = 0
	}
	d.rowsSinceHeading++

	widths := columnWidths(d.headings, d.values)
	for _, w := range d.writers {
		switch w.T {
		default:
			panic("display: unknown writer type")
		case Logger:
			if _, err := io.WriteString(w, strings.Join(d.values, ",")+"\n"); err != nil {
				return err
			}
		case Displayer:
			if writeHeadings {
				if err := writeAligned(w, d.headings, widths); err != nil {
					return err
				}
			}
			if err := writeAligned(w, d.values, widths); err != nil {
				return err
			}
		}
	}
	return nil
}

func columnWidths(headings, values []string) []int {
	widths := make([]int, len(headings))
	for i := range widths {
		widths[i] = len(headings[i])
		if len(values[i]) > widths[i] {
			widths[i] = len(values[i])
		}
	}
	return widths
}

func writeAligned(w io.Writer, strs []string, widths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", widths[i]-len(str)) + "\t"
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func valueToString(v interface{}) string {
	switch v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return fmt.Sprintf("%s", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
