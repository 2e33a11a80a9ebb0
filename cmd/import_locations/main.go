// Command import_locations bulk-loads a location catalog dump into the
// locations table. Used to seed a fresh environment from a JSON export.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type LocationData struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Address     string   `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	RatingAvg   float64  `json:"rating_avg"`
	RatingCount int32    `json:"rating_count"`
	Source      string   `json:"source"`
	SourceID    string   `json:"source_id"`
}

type LocationsFile struct {
	Locations []LocationData `json:"locations"`
}

func main() {
	var (
		file = flag.String("file", "locations.json", "path to the JSON export")
		dsn  = flag.String("db", os.Getenv("DB_SOURCE"), "database connection string")
	)
	flag.Parse()

	if *dsn == "" {
		log.Fatal("database connection string required (-db or DB_SOURCE)")
	}

	conn, err := pgx.Connect(context.Background(), *dsn)
	if err != nil {
		log.Fatal("cannot connect to database:", err)
	}
	defer conn.Close(context.Background())

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("cannot read file:", err)
	}

	var locationsFile LocationsFile
	if err := json.Unmarshal(data, &locationsFile); err != nil {
		log.Fatal("cannot parse JSON:", err)
	}

	fmt.Printf("importing %d locations...\n", len(locationsFile.Locations))

	batchSize := 1000
	total := 0
	for i := 0; i < len(locationsFile.Locations); i += batchSize {
		end := i + batchSize
		if end > len(locationsFile.Locations) {
			end = len(locationsFile.Locations)
		}
		batch := locationsFile.Locations[i:end]

		rows := make([][]interface{}, len(batch))
		for j, l := range batch {
			var latitude, longitude pgtype.Float8
			if l.Latitude != nil && l.Longitude != nil {
				latitude = pgtype.Float8{Float64: *l.Latitude, Valid: true}
				longitude = pgtype.Float8{Float64: *l.Longitude, Valid: true}
			}

			source := l.Source
			if source == "" {
				source = "manual"
			}
			sourceID := l.SourceID
			if sourceID == "" {
				sourceID = l.Name + "|" + l.Address
			}

			rows[j] = []interface{}{
				l.Name, l.Category, l.Address,
				latitude, longitude,
				l.RatingAvg, l.RatingCount,
				source, sourceID,
			}
		}

		count, err := conn.CopyFrom(
			context.Background(),
			pgx.Identifier{"locations"},
			[]string{
				"name", "category", "address",
				"latitude", "longitude",
				"rating_avg", "rating_count",
				"source", "source_id",
			},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			log.Fatal("copy failed:", err)
		}
		total += int(count)
		fmt.Printf("  %d/%d\n", total, len(locationsFile.Locations))
	}

	fmt.Printf("done: %d locations imported\n", total)
}
