package common

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyContainer is returned by Pop/Dequeue on an empty stack or queue.
var ErrEmptyContainer = errors.New("container is empty")

// ErrNoIndex is returned by tree-backed operations before any sort has run.
var ErrNoIndex = errors.New("no index available: run a sort first")

// Record is the basic unit of the dataset: one customer row.
// Records are immutable once built; all ordering comes from KeyOf.
type Record struct {
	CustomerID string
	FirstName  string
	LastName   string
	Company    string
	City       string
	Country    string
	Email      string
	Subscribed Date
	Website    string
}

// NewRecord builds a Record from one raw 9-field tuple, in CSV column
// order. Fields are trimmed; an unparseable subscription date becomes
// the explicit no-date marker and is never an error.
func NewRecord(id, first, last, company, city, country, email, rawDate, website string) Record {
	return Record{
		CustomerID: strings.TrimSpace(id),
		FirstName:  strings.TrimSpace(first),
		LastName:   strings.TrimSpace(last),
		Company:    strings.TrimSpace(company),
		City:       strings.TrimSpace(city),
		Country:    strings.TrimSpace(country),
		Email:      strings.TrimSpace(email),
		Subscribed: ParseDate(rawDate),
		Website:    strings.TrimSpace(website),
	}
}

// String renders the row with " - " between fields, empty date for
// records without one.
func (r Record) String() string {
	return fmt.Sprintf("%s - %s - %s - %s - %s - %s - %s - %s - %s",
		r.CustomerID, r.FirstName, r.LastName, r.Company,
		r.City, r.Country, r.Email, r.Subscribed, r.Website)
}

// Field returns the value of a record field by its wire name, as a
// string. Returns false for unknown names.
func (r Record) Field(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "id", "customer_id":
		return r.CustomerID, true
	case "first_name":
		return r.FirstName, true
	case "last_name":
		return r.LastName, true
	case "company":
		return r.Company, true
	case "city":
		return r.City, true
	case "country":
		return r.Country, true
	case "email":
		return r.Email, true
	case "subscription_date", "date":
		return r.Subscribed.String(), true
	case "website":
		return r.Website, true
	}
	return "", false
}
