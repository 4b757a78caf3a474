package common

// NewStatus is used to get a unique value for Status to avoid any accidental
// collisions. NewStatus is not thread-safe as it is intended to only be used
// during initialization
func NewStatus(str string) Status {
	lastStatus++
	statusStrings[lastStatus] = str
	return Status(lastStatus)
}

var statusStrings map[Status]string

func init() {
	statusStrings = make(map[Status]string)
	statusStrings[Continue] = "Continue"
	statusStrings[BracketConverged] = "BracketConverged"
}

// Status expresses how a search ended. Zero signifies the search is still
// in progress. Positive values indicate successful completion.
//
// If a custom status value is desired, NewStatus should be called. NewStatus
// is not thread-safe as it is intended to only be used during initialization
type Status int

func (s Status) String() string {
	str, ok := statusStrings[s]
	if !ok {
		return "UnregisteredStatus"
	}
	return str
}

const (
	Continue Status = iota
	// BracketConverged means the search ran its full iteration count, at
	// which point the bracket width is at or below the tolerance.
	BracketConverged
)

var lastStatus Status = 256
