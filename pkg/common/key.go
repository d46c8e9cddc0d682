package common

import "strings"

// SortKey names the field the dataset was last ordered and indexed by.
type SortKey int

const (
	KeyNone SortKey = iota
	KeyID
	KeyFirstName
	KeyDate
	KeyCountry
)

func (k SortKey) String() string {
	switch k {
	case KeyID:
		return "id"
	case KeyFirstName:
		return "first_name"
	case KeyDate:
		return "subscription_date"
	case KeyCountry:
		return "country"
	}
	return "none"
}

// ParseSortKey maps user input to a SortKey. Accepts the wire names
// plus the short aliases used by the CLI menu.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "id", "customer_id":
		return KeyID, true
	case "first_name", "name":
		return KeyFirstName, true
	case "subscription_date", "date":
		return KeyDate, true
	case "country":
		return KeyCountry, true
	}
	return KeyNone, false
}

// Key is an extracted, comparable field value. String-kinded keys carry
// the case-folded text so ordering and equality ignore case; date keys
// carry the Date itself so no-date sorts last.
type Key struct {
	Kind SortKey
	Str  string
	Date Date
}

// KeyOf is the key-extraction function: a pure mapping from a Record to
// the comparable value for the given kind.
func KeyOf(kind SortKey, r Record) Key {
	k := Key{Kind: kind}
	switch kind {
	case KeyID:
		k.Str = strings.ToLower(r.CustomerID)
	case KeyFirstName:
		k.Str = strings.ToLower(r.FirstName)
	case KeyCountry:
		k.Str = strings.ToLower(r.Country)
	case KeyDate:
		k.Date = r.Subscribed
	}
	return k
}

// KeyFor builds the lookup key for a raw query value, applying the
// same normalization KeyOf applies to records.
func KeyFor(kind SortKey, value string) Key {
	k := Key{Kind: kind}
	if kind == KeyDate {
		k.Date = ParseDate(value)
	} else {
		k.Str = strings.ToLower(strings.TrimSpace(value))
	}
	return k
}

// Compare is the total order over keys of the same kind.
func (k Key) Compare(other Key) int {
	if k.Kind == KeyDate {
		return k.Date.Compare(other.Date)
	}
	return strings.Compare(k.Str, other.Str)
}

// String renders the extracted value for display: the case-folded text
// for string kinds, ISO date or empty for the date kind.
func (k Key) String() string {
	if k.Kind == KeyDate {
		return k.Date.String()
	}
	return k.Str
}

// CompareKeys adapts Key.Compare to the function shape the tree and the
// sort routines take.
func CompareKeys(a, b Key) int { return a.Compare(b) }

// RecordComparator returns the record ordering induced by the given
// sort key.
func RecordComparator(kind SortKey) func(a, b Record) int {
	return func(a, b Record) int {
		return KeyOf(kind, a).Compare(KeyOf(kind, b))
	}
}
