package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"custdb/pkg/common"
	"custdb/pkg/config"
	"custdb/pkg/core"
	"custdb/pkg/query"
	"custdb/pkg/storage"
)

const Prompt = "custdb> "

func main() {
	configPath := flag.String("config", "", "Config file path (default: configs/custdb.yaml)")
	dataPath := flag.String("data", "", "Dataset path (overrides config)")
	format := flag.String("format", "", "Dataset format: csv or sqlite (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *format != "" {
		cfg.Data.Format = strings.ToLower(*format)
	}

	engine := core.NewEngine()
	fmt.Printf("Loading %s dataset from %s...\n", cfg.Data.Format, cfg.Data.Path)
	rows, err := sourceFor(cfg).Rows()
	if err != nil {
		fmt.Printf("Load failed: %v\n", err)
		return
	}
	n := engine.Load(rows)
	fmt.Printf("Loaded %d records. Type 'help' for commands.\n", n)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "show":
			handleShow(engine, cfg, parts)
		case "sort":
			handleSort(engine, parts)
		case "find":
			handleFind(engine, line)
		case "range":
			handleRange(engine, parts)
		case "tree":
			handleTree(engine)
		case "stats":
			handleStats(engine)
		case "help":
			printHelp()
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command: '%s'. Type 'help'.\n", cmd)
		}
	}
}

func sourceFor(cfg *config.Config) storage.Source {
	if cfg.Data.Format == "sqlite" {
		return storage.SQLiteSource{Path: cfg.Data.Path}
	}
	return storage.CSVSource{Path: cfg.Data.Path}
}

func handleShow(engine *core.Engine, cfg *config.Config, parts []string) {
	limit := cfg.Display.Limit
	if len(parts) > 1 {
		if parts[1] == "all" {
			limit = -1
		} else {
			n, err := strconv.Atoi(parts[1])
			if err != nil || n < 0 {
				fmt.Println("Usage: show [n|all]")
				return
			}
			limit = n
		}
	}
	records := engine.First(limit)
	for _, rec := range records {
		fmt.Println(rec)
	}
	fmt.Printf("(%d of %d records, order: %s)\n", len(records), engine.Len(), engine.ActiveKey())
}

func handleSort(engine *core.Engine, parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: sort <id|name|date|country>")
		return
	}
	kind, ok := common.ParseSortKey(parts[1])
	if !ok {
		fmt.Printf("Unknown sort key '%s'. Use id, name, date or country.\n", parts[1])
		return
	}
	if err := engine.SortBy(kind); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("OK. Dataset sorted by %s; index rebuilt.\n", kind)
}

func handleFind(engine *core.Engine, line string) {
	raw := strings.TrimSpace(strings.TrimPrefix(line, "find"))
	if raw == "" {
		fmt.Println("Usage: find <field> <op> <value>   e.g. find country = France")
		return
	}
	expr, err := query.Parse(raw)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var result *core.Comparison
	if expr.Exact() {
		result, err = engine.Search(expr.Field, expr.Value)
	} else {
		result, err = engine.SearchPred(expr.Match)
	}
	if errors.Is(err, common.ErrNoIndex) {
		fmt.Println("No index yet (run 'sort' first); using linear scan only.")
		result = engine.LinearSearchPred(expr.Match)
	} else if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printComparison(result)
}

func handleRange(engine *core.Engine, parts []string) {
	if len(parts) < 3 {
		fmt.Println("Usage: range <from> <to>   dates in YYYY-MM-DD form")
		return
	}
	from := common.ParseDate(parts[1])
	to := common.ParseDate(parts[2])
	if !from.Valid || !to.Valid {
		fmt.Println("Error: dates must be in YYYY-MM-DD form")
		return
	}
	result, err := engine.SearchRange(from, to)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printComparison(result)
}

func handleTree(engine *core.Engine) {
	levels, err := engine.Levels()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	depth := -1
	for _, entry := range levels {
		if entry.Depth != depth {
			depth = entry.Depth
			fmt.Printf("Level %d:\n", depth)
		}
		fmt.Printf("  %q x%d\n", entry.Key.String(), entry.BucketSize)
	}
}

func handleStats(engine *core.Engine) {
	stats := engine.Statistics()
	fmt.Printf("Records: %d\n", stats.Records)
	fmt.Printf("Countries: %d\n", stats.Countries)
	for _, cc := range stats.Counts {
		fmt.Printf("  %-30s %d\n", cc.Country, cc.Count)
	}
	fmt.Printf("Earliest subscription: %s\n", orNone(stats.Earliest.String()))
	fmt.Printf("Latest subscription:   %s\n", orNone(stats.Latest.String()))
}

func printComparison(result *core.Comparison) {
	for _, rec := range result.Records {
		fmt.Println(rec)
	}
	fmt.Printf("%d match(es)\n", len(result.Records))
	if result.TreeDuration > 0 {
		fmt.Printf("  AVL:   %v\n", result.TreeDuration)
	}
	fmt.Printf("  Stack: %v\n", result.StackDuration)
	fmt.Printf("  Queue: %v\n", result.QueueDuration)
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  show [n|all]            List records in current order")
	fmt.Println("  sort <id|name|date|country>")
	fmt.Println("                          Sort the dataset and rebuild the index")
	fmt.Println("  find <field> <op> <value>")
	fmt.Println("                          Search (e.g. find country = France)")
	fmt.Println("  range <from> <to>       Subscription date range search")
	fmt.Println("  tree                    Level-order dump of the index")
	fmt.Println("  stats                   Dataset statistics")
	fmt.Println("  exit                    Quit")
}
