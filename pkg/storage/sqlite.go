package storage

import (
	"database/sql"
	"fmt"

	"custdb/pkg/common"

	_ "modernc.org/sqlite"
)

const customersSchema = `
CREATE TABLE IF NOT EXISTS customers (
	customer_id       TEXT PRIMARY KEY,
	first_name        TEXT,
	last_name         TEXT,
	company           TEXT,
	city              TEXT,
	country           TEXT,
	email             TEXT,
	subscription_date TEXT,
	website           TEXT
);`

// SQLiteSource reads customer rows from an embedded SQLite database,
// preserving insertion order.
type SQLiteSource struct {
	Path string
}

func (s SQLiteSource) Rows() ([][]string, error) {
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT customer_id, first_name, last_name, company,
		city, country, email, subscription_date, website
		FROM customers ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var out [][]string
	for rows.Next() {
		row := make([]string, 9)
		dests := make([]interface{}, 9)
		for i := range row {
			dests[i] = &row[i]
		}
		if err := rows.Scan(dests...); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ExportSQLite writes records into a customers table at path, creating
// the schema when missing. The whole batch goes through one transaction
// with a prepared statement.
func ExportSQLite(path string, records []common.Record) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(customersSchema); err != nil {
		return fmt.Errorf("init customers table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO customers
		(customer_id, first_name, last_name, company, city, country, email, subscription_date, website)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.Exec(r.CustomerID, r.FirstName, r.LastName, r.Company,
			r.City, r.Country, r.Email, r.Subscribed.String(), r.Website)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert customer %s: %w", r.CustomerID, err)
		}
	}

	return tx.Commit()
}
