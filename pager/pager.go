package pager

import "bikeshare/domain/entities/trip"

// Source is anything that can hand out trips by position
type Source interface {
	Len() int
	Rows(start int, end int) ([]trip.TripData, error)
}

// Pager is the cursor of one raw data viewing session. Build a new one for every session.
// + Start: index of the first row of the next page
// + Size: rows per page
type Pager struct {
	Start int
	Size  int
}

func NewPager(size int) *Pager {
	return &Pager{Size: size}
}

// Next returns the rows [Start, Start+Size) and moves the cursor to the following page
func (p *Pager) Next(source Source) ([]trip.TripData, error) {
	rows, err := source.Rows(p.Start, p.Start+p.Size)
	if err != nil {
		return nil, err
	}

	p.Start += p.Size
	if p.Start > source.Len() {
		p.Start = source.Len()
	}
	return rows, nil
}

// Done returns true when there are no more rows to show
func (p *Pager) Done(source Source) bool {
	return p.Start >= source.Len()
}
