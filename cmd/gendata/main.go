package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"custdb/pkg/common"
	"custdb/pkg/storage"
)

var (
	firstNames = []string{"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda", "William", "Elizabeth", "Sofia", "Mateo"}
	lastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
	companies  = []string{"Acme Corp", "Globex", "Initech", "Umbrella", "Stark Industries", "Wayne Enterprises", "Wonka Industries"}
	cities     = []string{"New York", "Los Angeles", "Paris", "Berlin", "Madrid", "Bogota", "Tokyo", "Oslo", "Santiago", "Nairobi"}
	countries  = []string{"USA", "France", "Germany", "Spain", "Colombia", "Japan", "Norway", "Chile", "Kenya", "Brazil"}
)

func main() {
	n := flag.Int("n", 1000, "Number of records to generate")
	out := flag.String("out", "customers.csv", "Output path")
	format := flag.String("format", "csv", "Output format: csv or sqlite")
	seed := flag.Int64("seed", time.Now().UnixNano(), "RNG seed")
	missingDates := flag.Float64("missing-dates", 0.05, "Fraction of records without a subscription date")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	records := make([]common.Record, 0, *n)
	for i := 0; i < *n; i++ {
		records = append(records, generateRecord(rng, *missingDates))
	}

	var err error
	switch strings.ToLower(*format) {
	case "csv":
		err = writeCSV(*out, records)
	case "sqlite":
		err = storage.ExportSQLite(*out, records)
	default:
		log.Fatalf("Unknown format %q (use csv or sqlite)", *format)
	}
	if err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("[Gen] Wrote %d records to %s (%s).", len(records), *out, *format)
}

func generateRecord(rng *rand.Rand, missingDates float64) common.Record {
	first := firstNames[rng.Intn(len(firstNames))]
	last := lastNames[rng.Intn(len(lastNames))]

	rawDate := ""
	if rng.Float64() >= missingDates {
		sub := time.Date(2015+rng.Intn(10), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
		rawDate = sub.Format("2006-01-02")
	}

	return common.NewRecord(
		uuid.NewString(),
		first,
		last,
		companies[rng.Intn(len(companies))],
		cities[rng.Intn(len(cities))],
		countries[rng.Intn(len(countries))],
		fmt.Sprintf("%s.%s@example.com", strings.ToLower(first), strings.ToLower(last)),
		rawDate,
		fmt.Sprintf("https://www.%s.example.com", strings.ToLower(strings.ReplaceAll(last, " ", ""))),
	)
}

func writeCSV(path string, records []common.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"Customer Id", "First Name", "Last Name", "Company", "City", "Country", "Email", "Subscription Date", "Website"}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{r.CustomerID, r.FirstName, r.LastName, r.Company, r.City, r.Country, r.Email, r.Subscribed.String(), r.Website}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
