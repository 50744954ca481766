// topiq-extract reads collected documents, normalizes them and prints the
// ranked topic and keyword lists. Input is one document per line, or JSONL
// records with text/text_clean fields.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/trendlens/topiq/pkg/topiq"
	"github.com/trendlens/topiq/pkg/topiq/config"
)

type docJSON struct {
	Text      string `json:"text"`
	TextClean string `json:"text_clean"`
}

func main() {
	var (
		input   = flag.String("input", "", "Input file (default: stdin)")
		jsonl   = flag.Bool("jsonl", false, "Input is JSONL with text/text_clean fields")
		k       = flag.Int("k", 10, "Number of topics to extract")
		cfgPath = flag.String("config", "", "Optional YAML config file")
		source  = flag.String("source", "", "Source label recorded in run snapshots")
	)
	flag.Parse()

	ctx := context.Background()

	loader := config.Loader{
		ConfigPath: *cfgPath,
		Diagnostic: func(original, cleaned string, ratio float64) {
			log.Printf("over-filtered input: %d -> %d bytes (%.1f%%)",
				len(original), len(cleaned), ratio*100)
		},
	}
	engine, err := loader.Load(ctx)
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	docs, err := readDocs(*input, *jsonl)
	if err != nil {
		log.Fatal(err)
	}
	if len(docs) == 0 {
		log.Fatal("no input documents")
	}
	log.Printf("read %d documents", len(docs))

	analysis, err := engine.Analyze(ctx, *source, docs, *k)
	if err != nil {
		log.Fatal(err)
	}

	report := analysis.Report
	log.Printf("documents=%d vocabulary=%d candidates=%d gate1_rejected=%d gate2_rejected=%d fallback=%v",
		report.Documents, report.Vocabulary, report.Candidates,
		report.Gate1Rejected, report.Gate2Rejected, report.FallbackUsed)
	if analysis.RunID != "" {
		log.Printf("snapshot run %s", analysis.RunID)
	}

	fmt.Println("Topics:")
	for i, topic := range analysis.Topics {
		fmt.Printf("  %2d. %s\n", i+1, topic)
	}
	fmt.Println("Keywords:")
	for _, kw := range analysis.Keywords {
		fmt.Printf("  %-20s %d\n", kw.Keyword, kw.Count)
	}
}

func readDocs(path string, jsonl bool) ([]topiq.Document, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var docs []topiq.Document
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if jsonl {
			var d docJSON
			if err := json.Unmarshal([]byte(line), &d); err != nil {
				log.Printf("skipping malformed line: %v", err)
				continue
			}
			docs = append(docs, topiq.Document{Text: d.Text, CleanText: d.TextClean})
		} else {
			docs = append(docs, topiq.Plain(line))
		}
	}
	return docs, scanner.Err()
}
