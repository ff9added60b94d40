package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"troc-service/repositories"

	"github.com/blugelabs/bluge"
	"github.com/mama165/sdk-go/logs"
)

// Analyzed search over the offers directory, for operators. Run against
// a copy of the index while the bot holds the live writer.
func main() {
	indexPath := flag.String("index", "", "Path to the bluge offers index")
	limit := flag.Int("limit", 10, "Maximum number of hits")
	flag.Parse()

	if *indexPath == "" {
		log.Fatal("missing -index flag")
	}
	term := strings.Join(flag.Args(), " ")
	if term == "" {
		log.Fatal("missing search term")
	}

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(*indexPath))
	if err != nil {
		log.Fatal("Error while opening index: ", err)
	}
	defer writer.Close()

	directory := repositories.NewOffersDirectory(writer, logs.GetLoggerFromString("WARN"))
	hits, err := directory.Search(context.Background(), term, *limit)
	if err != nil {
		log.Fatal(err)
	}

	if len(hits) == 0 {
		fmt.Println("No offers matched.")
		return
	}
	for i, hit := range hits {
		fmt.Printf("%d. %s (%dh) by %s [%s]\n", i+1, hit.Service, hit.Hours, hit.Identity, hit.OfferID)
	}
}
