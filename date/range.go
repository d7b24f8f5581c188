package date

import "fmt"

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// Span returns the smallest Range containing all the dates.
// ok is false if there is no date at all.
func Span(dates ...Date) (r Range, ok bool) {
	for i, d := range dates {
		if i == 0 || d.Before(r.From) {
			r.From = d
		}
		if i == 0 || d.After(r.To) {
			r.To = d
		}
	}
	return r, len(dates) > 0
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days in the range.
func (r Range) Days() int { return int(r.To.time().Sub(r.From.time()).Hours()/24) + 1 }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
