package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Read-only dump of the marketplace database. Records are stored as JSON,
// so the tool keeps its own mirror of the persisted shapes.

type profileRecord struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
}

type offerRecord struct {
	ID       string `json:"id"`
	Identity string `json:"identity"`
	Service  string `json:"service"`
	Hours    uint   `json:"hours"`
}

type needRecord struct {
	Identity string `json:"identity"`
	Label    string `json:"label"`
}

type agreementRecord struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Partner     string `json:"partner"`
}

func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	prefix := flag.String("prefix", "", "Prefix to scan (participant:, offer:, need:, agreement:)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db flag")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Identity", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				kind, identity, detail, err := describe(key, v)
				if err != nil {
					// Log and keep scanning instead of aborting the dump.
					fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
					return nil
				}
				table.Append([]string{key, kind, identity, detail})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func describe(key string, val []byte) (kind, identity, detail string, err error) {
	switch {
	case strings.HasPrefix(key, "participant:"):
		var rec profileRecord
		if err = json.Unmarshal(val, &rec); err != nil {
			return
		}
		return "PROFILE", rec.Identity, fmt.Sprintf("%s <%s> %s", rec.Name, rec.Email, rec.Phone), nil
	case strings.HasPrefix(key, "offer:"):
		var rec offerRecord
		if err = json.Unmarshal(val, &rec); err != nil {
			return
		}
		return "OFFER", rec.Identity, fmt.Sprintf("%s (%dh)", rec.Service, rec.Hours), nil
	case strings.HasPrefix(key, "need:"):
		var rec needRecord
		if err = json.Unmarshal(val, &rec); err != nil {
			return
		}
		return "NEED", rec.Identity, rec.Label, nil
	case strings.HasPrefix(key, "agreement:"):
		var rec agreementRecord
		if err = json.Unmarshal(val, &rec); err != nil {
			return
		}
		return "AGREEMENT", rec.Partner, rec.Description, nil
	default:
		return "UNKNOWN", "", string(val), nil
	}
}
