package storage

// Source supplies raw customer rows, each in canonical field order:
// customer_id, first_name, last_name, company, city, country, email,
// subscription_date, website. Rows come back in input order; the engine
// owns all parsing beyond field extraction.
type Source interface {
	Rows() ([][]string, error)
}
