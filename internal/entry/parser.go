package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Validation errors returned by Validate, ParseKinds and New
var (
	ErrNoActivities  = errors.New("at least one activity must be selected")
	ErrUnknownKind   = errors.New("unknown activity")
	ErrDuplicateKind = errors.New("duplicate activity")
	ErrOrphanDetails = errors.New("details given for an activity that is not selected")
	ErrInvalidDetail = errors.New("invalid detail value")
)

// clockPattern matches an HH:MM time of day as produced by a time picker (e.g., "07:30", "19:05")
var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Draft is the raw input for a new entry before it is stamped with date and time.
type Draft struct {
	Activities []Kind
	Details    Details
	Notes      string
}

// ClockFormat selects how Entry.Time is rendered
type ClockFormat string

const (
	Clock24h ClockFormat = "24h"
	Clock12h ClockFormat = "12h"
)

// Layout returns the time layout for the clock format
func (c ClockFormat) Layout() string {
	if c == Clock12h {
		return "03:04 PM"
	}
	return "15:04"
}

// ParseKinds converts activity names into kinds.
// Names are matched case-insensitively and may be comma separated
// (e.g., []string{"walk,poop", "Meal"}).
// Returns ErrNoActivities when nothing was given.
func ParseKinds(names []string) ([]Kind, error) {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.ToLower(strings.TrimSpace(part))
			if part == "" {
				continue
			}
			k := Kind(part)
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %q", ErrUnknownKind, part)
			}
			if seen[k] {
				continue
			}
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	if len(kinds) == 0 {
		return nil, ErrNoActivities
	}
	return kinds, nil
}

// New stamps a draft with the date and time of now and returns the entry.
// Date and Time use now's location, Timestamp is the same instant in UTC.
// Details for kinds that are not selected are dropped, notes are trimmed and
// enumerated detail values get their form defaults when left empty.
func New(now time.Time, clock ClockFormat, d Draft) (Entry, error) {
	if len(d.Activities) == 0 {
		return Entry{}, ErrNoActivities
	}

	details := d.Details.Only(d.Activities)
	applyDefaults(&details, d.Activities)
	trimDetails(&details)

	e := Entry{
		Date:       now.Format("2006-01-02"),
		Time:       now.Format(clock.Layout()),
		Activities: append([]Kind(nil), d.Activities...),
		Details:    details,
		Notes:      strings.TrimSpace(d.Notes),
		Timestamp:  now.UTC().Format(TimestampLayout),
	}

	if err := e.Validate(); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// applyDefaults mirrors the form defaults: elimination happens "on walk" and
// play is "without other dogs" unless said otherwise.
func applyDefaults(d *Details, kinds []Kind) {
	for _, k := range kinds {
		switch k {
		case Poop:
			if d.Poop == nil {
				d.Poop = &EliminationDetails{}
			}
			if d.Poop.Location == "" {
				d.Poop.Location = WhereWalk
			}
		case Pish:
			if d.Pish == nil {
				d.Pish = &EliminationDetails{}
			}
			if d.Pish.Location == "" {
				d.Pish.Location = WhereWalk
			}
		case Play:
			if d.Play == nil {
				d.Play = &PlayDetails{}
			}
			if d.Play.WithOtherDogs == "" {
				d.Play.WithOtherDogs = No
			}
		case Walk:
			if d.Walk == nil {
				d.Walk = &WalkDetails{}
			}
		case Sleep:
			if d.Sleep == nil {
				d.Sleep = &SleepDetails{}
			}
		case Meal:
			if d.Meal == nil {
				d.Meal = &MealDetails{}
			}
		case Other:
			if d.Other == nil {
				d.Other = &OtherDetails{}
			}
		}
	}
}

func trimDetails(d *Details) {
	if w := d.Walk; w != nil {
		w.Start, w.End = strings.TrimSpace(w.Start), strings.TrimSpace(w.End)
		w.Distance, w.Location = strings.TrimSpace(w.Distance), strings.TrimSpace(w.Location)
	}
	if p := d.Play; p != nil {
		p.WithOtherDogs = strings.ToLower(strings.TrimSpace(p.WithOtherDogs))
		p.Details = strings.TrimSpace(p.Details)
	}
	if s := d.Sleep; s != nil {
		s.Start, s.End = strings.TrimSpace(s.Start), strings.TrimSpace(s.End)
		s.Location = strings.TrimSpace(s.Location)
	}
	if m := d.Meal; m != nil {
		m.Time, m.Food = strings.TrimSpace(m.Time), strings.TrimSpace(m.Food)
	}
	if o := d.Other; o != nil {
		o.Description = strings.TrimSpace(o.Description)
	}
	if p := d.Poop; p != nil {
		p.Location = strings.ToLower(strings.TrimSpace(p.Location))
	}
	if p := d.Pish; p != nil {
		p.Location = strings.ToLower(strings.TrimSpace(p.Location))
	}
}

// Validate checks the entry invariants: a non-empty, duplicate-free list of
// known activities, details only for listed activities and well-formed
// detail values.
func (e Entry) Validate() error {
	if len(e.Activities) == 0 {
		return ErrNoActivities
	}

	seen := make(map[Kind]bool, len(e.Activities))
	for _, k := range e.Activities {
		if !k.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownKind, k)
		}
		if seen[k] {
			return fmt.Errorf("%w: %q", ErrDuplicateKind, k)
		}
		seen[k] = true
	}

	for _, k := range e.Details.Kinds() {
		if !seen[k] {
			return fmt.Errorf("%w: %s", ErrOrphanDetails, k)
		}
	}

	return validateDetails(e.Details)
}

func validateDetails(d Details) error {
	if w := d.Walk; w != nil {
		if err := validateClock("walk start", w.Start); err != nil {
			return err
		}
		if err := validateClock("walk end", w.End); err != nil {
			return err
		}
		if w.Distance != "" {
			km, err := strconv.ParseFloat(w.Distance, 64)
			if err != nil || km < 0 {
				return fmt.Errorf("%w: walk distance must be a non-negative number of km, got %q", ErrInvalidDetail, w.Distance)
			}
		}
	}
	if err := validateWhere("poop", d.Poop); err != nil {
		return err
	}
	if err := validateWhere("pish", d.Pish); err != nil {
		return err
	}
	if p := d.Play; p != nil && p.WithOtherDogs != "" && p.WithOtherDogs != Yes && p.WithOtherDogs != No {
		return fmt.Errorf("%w: play with other dogs must be yes or no, got %q", ErrInvalidDetail, p.WithOtherDogs)
	}
	if s := d.Sleep; s != nil {
		if err := validateClock("sleep start", s.Start); err != nil {
			return err
		}
		if err := validateClock("sleep end", s.End); err != nil {
			return err
		}
	}
	if m := d.Meal; m != nil {
		if err := validateClock("meal time", m.Time); err != nil {
			return err
		}
	}
	return nil
}

func validateClock(field, value string) error {
	if value == "" || clockPattern.MatchString(value) {
		return nil
	}
	return fmt.Errorf("%w: %s must be HH:MM, got %q", ErrInvalidDetail, field, value)
}

func validateWhere(kind string, d *EliminationDetails) error {
	if d == nil || d.Location == "" || d.Location == WhereWalk || d.Location == WhereBackyard {
		return nil
	}
	return fmt.Errorf("%w: %s location must be walk or backyard, got %q", ErrInvalidDetail, kind, d.Location)
}
