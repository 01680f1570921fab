// Command min2redis loads a Day-shaped min1.dat store into Redis, filtered
// by date, one key per instrument.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	host := flag.String("host", "127.0.0.1", "redis host")
	port := flag.Int("port", 6379, "redis port")
	date := flag.String("date", "", "date filter, YYYYMMDD (required)")
	file := flag.String("file", "", "path to the min1.dat store (required)")
	lz4Flag := flag.Bool("lz4", false, "LZ4-compress payloads before storing")
	flag.Parse()

	if *file == "" || *date == "" {
		fmt.Fprintln(os.Stderr, "usage: min2redis -file <file> -date <YYYYMMDD> [-host H] [-port PORT] [-lz4]")
		os.Exit(2)
	}

	opts := loadOptions{
		Host:    *host,
		Port:    *port,
		Date:    *date,
		Path:    *file,
		UseLZ4:  *lz4Flag,
	}

	stats, err := run(context.Background(), opts)
	if err != nil {
		log.Fatalf("min2redis: %v", err)
	}

	log.Printf("loaded %d instruments, %d records, %d unchanged (skipped)", stats.Instruments, stats.Records, stats.Skipped)
}
