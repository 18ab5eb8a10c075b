package startmoment

// StartMoment owns a single, possibly unset, start date-time. The date and
// time-of-day views are projections of that one value.
type StartMoment struct {
	m Moment
}

// New returns a StartMoment holding m. A nil m yields an unset StartMoment.
func New(m Moment) *StartMoment {
	return &StartMoment{m: m}
}

// IsSet reports whether a start moment has been assigned
func (s *StartMoment) IsSet() bool {
	return s.m != nil
}

// Kind returns the representation of the current value
func (s *StartMoment) Kind() Kind {
	if s.m == nil {
		return KindUnset
	}
	return s.m.Kind()
}

// DateTime returns the full start moment, or nil when unset
func (s *StartMoment) DateTime() Moment {
	return s.m
}

// SetDateTime replaces the full start moment. A nil m clears it.
func (s *StartMoment) SetDateTime(m Moment) {
	s.m = m
}

// Date returns the date portion of the start moment
func (s *StartMoment) Date() (Moment, error) {
	if s.m == nil {
		return nil, &RepresentationError{Op: "get date", Kind: KindUnset}
	}
	return s.m.Date()
}

// SetDate replaces the date portion, keeping the time-of-day. An unset start
// moment adopts date as the whole value.
func (s *StartMoment) SetDate(date Moment) error {
	if date == nil {
		return &RepresentationError{Op: "set date", Kind: s.Kind()}
	}
	if s.m == nil {
		s.m = date
		return nil
	}

	m, err := s.m.WithDate(date)
	if err != nil {
		return err
	}
	s.m = m
	return nil
}

// Clock returns the time-of-day portion of the start moment
func (s *StartMoment) Clock() (Clock, error) {
	if s.m == nil {
		return nil, &RepresentationError{Op: "get time", Kind: KindUnset}
	}
	return s.m.Clock()
}

// SetClock replaces the time-of-day portion, keeping the date. An unset start
// moment takes its date from EpochDate.
func (s *StartMoment) SetClock(clock Clock) error {
	if clock == nil {
		return &RepresentationError{Op: "set time", Kind: s.Kind()}
	}

	current := s.m
	if current == nil {
		epoch, err := epochFor(clock)
		if err != nil {
			return err
		}
		current = epoch
	}

	m, err := current.WithClock(clock)
	if err != nil {
		return err
	}
	s.m = m
	return nil
}

// String renders the full start moment, or "" when unset
func (s *StartMoment) String() string {
	if s.m == nil {
		return ""
	}
	return s.m.String()
}
