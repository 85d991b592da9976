package entry

// Where values for poop and pish locations
const (
	WhereWalk     = "walk"
	WhereBackyard = "backyard"
)

// Answers for PlayDetails.WithOtherDogs
const (
	Yes = "yes"
	No  = "no"
)

// WalkDetails describes a walk. Distance is a decimal number of kilometres kept as text.
type WalkDetails struct {
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Distance string `json:"distance,omitempty"`
	Location string `json:"location,omitempty"`
}

// EliminationDetails is shared by poop and pish entries
type EliminationDetails struct {
	Location string `json:"location,omitempty"`
}

// PlayDetails describes a play session
type PlayDetails struct {
	WithOtherDogs string `json:"withOtherDogs,omitempty"`
	Details       string `json:"details,omitempty"`
}

// SleepDetails describes a nap or a night's sleep
type SleepDetails struct {
	Start    string `json:"start,omitempty"`
	End      string `json:"end,omitempty"`
	Location string `json:"location,omitempty"`
}

// MealDetails describes a meal
type MealDetails struct {
	Time string `json:"time,omitempty"`
	Food string `json:"food,omitempty"`
}

// OtherDetails describes anything that doesn't fit the other kinds
type OtherDetails struct {
	Description string `json:"description,omitempty"`
}

// Details holds the per-kind detail records of an entry.
// At most one record per kind; a record is only set for kinds the entry lists.
type Details struct {
	Walk  *WalkDetails        `json:"walk,omitempty"`
	Poop  *EliminationDetails `json:"poop,omitempty"`
	Pish  *EliminationDetails `json:"pish,omitempty"`
	Play  *PlayDetails        `json:"play,omitempty"`
	Sleep *SleepDetails       `json:"sleep,omitempty"`
	Meal  *MealDetails        `json:"meal,omitempty"`
	Other *OtherDetails       `json:"other,omitempty"`
}

// Field is a single named detail value
type Field struct {
	Name  string
	Value string
}

// Present reports whether the field carries a value
func (f Field) Present() bool {
	return f.Value != ""
}

// Has reports whether a detail record is set for k
func (d Details) Has(k Kind) bool {
	switch k {
	case Walk:
		return d.Walk != nil
	case Poop:
		return d.Poop != nil
	case Pish:
		return d.Pish != nil
	case Play:
		return d.Play != nil
	case Sleep:
		return d.Sleep != nil
	case Meal:
		return d.Meal != nil
	case Other:
		return d.Other != nil
	}
	return false
}

// Fields returns the detail fields recorded for k in declaration order.
// Returns nil when no record is set for k.
func (d Details) Fields(k Kind) []Field {
	switch k {
	case Walk:
		if d.Walk == nil {
			return nil
		}
		return []Field{
			{"start", d.Walk.Start},
			{"end", d.Walk.End},
			{"distance", d.Walk.Distance},
			{"location", d.Walk.Location},
		}
	case Poop:
		if d.Poop == nil {
			return nil
		}
		return []Field{{"location", d.Poop.Location}}
	case Pish:
		if d.Pish == nil {
			return nil
		}
		return []Field{{"location", d.Pish.Location}}
	case Play:
		if d.Play == nil {
			return nil
		}
		return []Field{
			{"withOtherDogs", d.Play.WithOtherDogs},
			{"details", d.Play.Details},
		}
	case Sleep:
		if d.Sleep == nil {
			return nil
		}
		return []Field{
			{"start", d.Sleep.Start},
			{"end", d.Sleep.End},
			{"location", d.Sleep.Location},
		}
	case Meal:
		if d.Meal == nil {
			return nil
		}
		return []Field{
			{"time", d.Meal.Time},
			{"food", d.Meal.Food},
		}
	case Other:
		if d.Other == nil {
			return nil
		}
		return []Field{{"description", d.Other.Description}}
	}
	return nil
}

// PresentFields returns only the fields of k that carry a value
func (d Details) PresentFields(k Kind) []Field {
	var present []Field
	for _, f := range d.Fields(k) {
		if f.Present() {
			present = append(present, f)
		}
	}
	return present
}

// Kinds returns the kinds that have a detail record set, in display order
func (d Details) Kinds() []Kind {
	var kinds []Kind
	for _, k := range Kinds {
		if d.Has(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Only returns a deep copy of d keeping just the records for the given kinds
func (d Details) Only(kinds []Kind) Details {
	var out Details
	for _, k := range kinds {
		switch k {
		case Walk:
			out.Walk = clone(d.Walk)
		case Poop:
			out.Poop = clone(d.Poop)
		case Pish:
			out.Pish = clone(d.Pish)
		case Play:
			out.Play = clone(d.Play)
		case Sleep:
			out.Sleep = clone(d.Sleep)
		case Meal:
			out.Meal = clone(d.Meal)
		case Other:
			out.Other = clone(d.Other)
		}
	}
	return out
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
