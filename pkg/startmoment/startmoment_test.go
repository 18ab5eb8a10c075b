package startmoment

import (
	"errors"
	"testing"
	"time"
)

func TestSetClockOnUnsetUsesEpoch(t *testing.T) {
	s := New(nil)
	if err := s.SetClock(Text("14:30:00")); err != nil {
		t.Fatalf("SetClock returned error: %v", err)
	}
	if got := s.String(); got != "1970-01-01T14:30:00" {
		t.Errorf("start moment = %q, expected %q", got, "1970-01-01T14:30:00")
	}

	s = New(nil)
	if err := s.SetClock(Offset(90 * time.Minute)); err != nil {
		t.Fatalf("SetClock returned error: %v", err)
	}
	want := time.Date(1970, 1, 1, 1, 30, 0, 0, time.UTC)
	if got := s.DateTime().(Structured).Time; !got.Equal(want) {
		t.Errorf("start moment = %v, expected %v", got, want)
	}
}

func TestSetDateOnText(t *testing.T) {
	tests := []struct {
		name     string
		initial  Moment
		date     Text
		expected string
	}{
		{
			name:     "replaces date and keeps midnight",
			initial:  Text("2020-05-01T00:00:00"),
			date:     "2020-06-15",
			expected: "2020-06-15T00:00:00",
		},
		{
			name:     "keeps time of day",
			initial:  Text("2020-05-01T08:15:30"),
			date:     "1999-12-31",
			expected: "1999-12-31T08:15:30",
		},
		{
			name:     "date-only string gains midnight",
			initial:  Text("2020-05-01"),
			date:     "2021-01-01",
			expected: "2021-01-01T00:00:00",
		},
		{
			name:     "unset adopts the date",
			initial:  nil,
			date:     "2021-01-01",
			expected: "2021-01-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.initial)
			if err := s.SetDate(tt.date); err != nil {
				t.Fatalf("SetDate returned error: %v", err)
			}
			if got := s.String(); got != tt.expected {
				t.Errorf("start moment = %q, expected %q", got, tt.expected)
			}
			if s.Kind() != KindText {
				t.Errorf("representation changed to %s", s.Kind())
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	priors := []Text{
		"2020-05-01T00:00:00",
		"2001-02-03T04:05:06",
		"1850-07-04T23:59:59",
	}

	for _, prior := range priors {
		t.Run(string(prior), func(t *testing.T) {
			s := New(prior)
			clockBefore, err := s.Clock()
			if err != nil {
				t.Fatalf("Clock returned error: %v", err)
			}

			if err := s.SetDate(Text("2030-10-11")); err != nil {
				t.Fatalf("SetDate returned error: %v", err)
			}
			date, err := s.Date()
			if err != nil {
				t.Fatalf("Date returned error: %v", err)
			}
			if date != Text("2030-10-11") {
				t.Errorf("Date() = %v, expected 2030-10-11", date)
			}
			clockAfter, _ := s.Clock()
			if clockAfter != clockBefore {
				t.Errorf("time of day changed from %v to %v", clockBefore, clockAfter)
			}

			dateBefore, _ := s.Date()
			if err := s.SetClock(Text("12:34:56")); err != nil {
				t.Fatalf("SetClock returned error: %v", err)
			}
			clock, _ := s.Clock()
			if clock != Text("12:34:56") {
				t.Errorf("Clock() = %v, expected 12:34:56", clock)
			}
			dateAfter, _ := s.Date()
			if dateAfter != dateBefore {
				t.Errorf("date changed from %v to %v", dateBefore, dateAfter)
			}
		})
	}
}

func TestStructuredRoundTrip(t *testing.T) {
	loc := time.FixedZone("model", -7*3600)
	priors := []time.Time{
		time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2001, 2, 3, 4, 5, 6, 700, time.UTC),
		time.Date(1850, 7, 4, 23, 59, 59, 0, loc),
	}

	for _, prior := range priors {
		t.Run(prior.String(), func(t *testing.T) {
			s := New(NewStructured(prior))
			clockBefore, err := s.Clock()
			if err != nil {
				t.Fatalf("Clock returned error: %v", err)
			}

			newDate := NewStructured(time.Date(2030, 10, 11, 0, 0, 0, 0, prior.Location()))
			if err := s.SetDate(newDate); err != nil {
				t.Fatalf("SetDate returned error: %v", err)
			}
			date, _ := s.Date()
			if !date.(Structured).Time.Equal(newDate.Time) {
				t.Errorf("Date() = %v, expected %v", date, newDate)
			}
			if clockAfter, _ := s.Clock(); clockAfter != clockBefore {
				t.Errorf("time of day changed from %v to %v", clockBefore, clockAfter)
			}

			dateBefore, _ := s.Date()
			if err := s.SetClock(Offset(12*time.Hour + 34*time.Minute)); err != nil {
				t.Fatalf("SetClock returned error: %v", err)
			}
			if clock, _ := s.Clock(); clock != Offset(12*time.Hour+34*time.Minute) {
				t.Errorf("Clock() = %v, expected 12:34:00", clock)
			}
			dateAfter, _ := s.Date()
			if !dateAfter.(Structured).Time.Equal(dateBefore.(Structured).Time) {
				t.Errorf("date changed from %v to %v", dateBefore, dateAfter)
			}
			if s.Kind() != KindStructured {
				t.Errorf("representation changed to %s", s.Kind())
			}
		})
	}
}

func TestStructuredViews(t *testing.T) {
	s := New(NewStructured(time.Date(2020, 5, 1, 14, 30, 15, 0, time.UTC)))

	date, err := s.Date()
	if err != nil {
		t.Fatalf("Date returned error: %v", err)
	}
	if got := date.String(); got != "2020-05-01T00:00:00" {
		t.Errorf("Date() = %q, expected 2020-05-01T00:00:00", got)
	}

	clock, err := s.Clock()
	if err != nil {
		t.Fatalf("Clock returned error: %v", err)
	}
	if got := clock.String(); got != "14:30:15" {
		t.Errorf("Clock() = %q, expected 14:30:15", got)
	}
}

func TestRepresentationErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{
			name: "date of unset",
			run: func() error {
				_, err := New(nil).Date()
				return err
			},
		},
		{
			name: "time of unset",
			run: func() error {
				_, err := New(nil).Clock()
				return err
			},
		},
		{
			name: "date of date-only text",
			run: func() error {
				_, err := New(Text("2020-05-01")).Date()
				return err
			},
		},
		{
			name: "time of date-only text",
			run: func() error {
				_, err := New(Text("2020-05-01")).Clock()
				return err
			},
		},
		{
			name: "structured date on text moment",
			run: func() error {
				return New(Text("2020-05-01T00:00:00")).SetDate(NewStructured(time.Now()))
			},
		},
		{
			name: "text time on structured moment",
			run: func() error {
				return New(NewStructured(time.Now())).SetClock(Text("10:00:00"))
			},
		},
		{
			name: "offset on text moment",
			run: func() error {
				return New(Text("2020-05-01T00:00:00")).SetClock(Offset(time.Hour))
			},
		},
		{
			name: "text date holding a time",
			run: func() error {
				return New(Text("2020-05-01T08:00:00")).SetDate(Text("2020-06-15T10:00:00"))
			},
		},
		{
			name: "text time holding a date",
			run: func() error {
				return New(Text("2020-05-01T08:00:00")).SetClock(Text("2020-06-15T10:00:00"))
			},
		},
		{
			name: "text time holding a date on unset",
			run: func() error {
				return New(nil).SetClock(Text("2020-06-15T10:00:00"))
			},
		},
		{
			name: "offset past one day",
			run: func() error {
				return New(NewStructured(time.Date(2020, 5, 1, 8, 0, 0, 0, time.UTC))).SetClock(Offset(25 * time.Hour))
			},
		},
		{
			name: "negative offset",
			run: func() error {
				return New(NewStructured(time.Date(2020, 5, 1, 8, 0, 0, 0, time.UTC))).SetClock(Offset(-time.Minute))
			},
		},
		{
			name: "nil clock",
			run: func() error {
				return New(nil).SetClock(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if !errors.Is(err, ErrRepresentation) {
				t.Errorf("expected ErrRepresentation, got %v", err)
			}
		})
	}
}

func TestFailedSetLeavesValue(t *testing.T) {
	s := New(Text("2020-05-01T06:00:00"))
	if err := s.SetClock(Offset(time.Hour)); err == nil {
		t.Fatal("expected error")
	}
	if got := s.String(); got != "2020-05-01T06:00:00" {
		t.Errorf("start moment = %q after failed set, expected it unchanged", got)
	}
}

func TestRejectedPartLeavesValue(t *testing.T) {
	text := New(Text("2020-05-01T08:00:00"))
	if err := text.SetDate(Text("2020-06-15T10:00:00")); err == nil {
		t.Fatal("expected error setting a full moment as the date")
	}
	if got := text.String(); got != "2020-05-01T08:00:00" {
		t.Errorf("text start moment = %q after rejected date, expected it unchanged", got)
	}

	start := time.Date(2020, 5, 1, 8, 0, 0, 0, time.UTC)
	structured := New(NewStructured(start))
	if err := structured.SetClock(Offset(25 * time.Hour)); err == nil {
		t.Fatal("expected error setting a 25h offset")
	}
	if got := structured.DateTime().(Structured); !got.Time.Equal(start) {
		t.Errorf("structured start moment = %v after rejected offset, expected %v", got.Time, start)
	}

	if err := structured.SetClock(Offset(24*time.Hour - time.Second)); err != nil {
		t.Fatalf("SetClock(23:59:59) returned error: %v", err)
	}
	clock, err := structured.Clock()
	if err != nil || clock != Offset(24*time.Hour-time.Second) {
		t.Errorf("Clock() = %v, %v; expected 23:59:59", clock, err)
	}
}

func TestParseText(t *testing.T) {
	tests := []struct {
		in       Text
		expected time.Time
		wantErr  bool
	}{
		{in: "2020-05-01T14:30:00", expected: time.Date(2020, 5, 1, 14, 30, 0, 0, time.UTC)},
		{in: "2020-05-01T14:30", expected: time.Date(2020, 5, 1, 14, 30, 0, 0, time.UTC)},
		{in: "2020-05-01", expected: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)},
		{in: "1970-1-1T00:00:00", expected: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2020-05-01T14:30:00.5", expected: time.Date(2020, 5, 1, 14, 30, 0, 500000000, time.UTC)},
		{in: "01/05/2020", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := ParseText(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseText returned error: %v", err)
			}
			if !got.Time.Equal(tt.expected) {
				t.Errorf("ParseText(%q) = %v, expected %v", tt.in, got.Time, tt.expected)
			}
		})
	}
}

func TestClockFor(t *testing.T) {
	clock, err := ClockFor(NewStructured(time.Now()), Text("06:45:00"))
	if err != nil {
		t.Fatalf("ClockFor returned error: %v", err)
	}
	if clock != Offset(6*time.Hour+45*time.Minute) {
		t.Errorf("ClockFor = %v, expected 06:45:00 offset", clock)
	}

	clock, err = ClockFor(Text("2020-01-01"), Text("06:45:00"))
	if err != nil {
		t.Fatalf("ClockFor returned error: %v", err)
	}
	if clock != Text("06:45:00") {
		t.Errorf("ClockFor = %v, expected text clock", clock)
	}

	if _, err := ClockFor(NewStructured(time.Now()), Text("noon")); err == nil {
		t.Error("expected parse error for non-clock text")
	}
}
