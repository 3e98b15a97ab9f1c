package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebdocs/ebinvoice/invoice/config"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.ReadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	paths := os.Args[1:]
	if len(paths) == 0 {
		log.Fatal("usage: invoice-renderer <invoice.json> [<invoice.json> ...]")
	}

	fmt.Printf("Rendering %d invoice(s) to %s\n", len(paths), cfg.OutputDir)

	// Invoices are independent once built, so files render concurrently.
	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			return renderFile(cfg, path)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}

func renderFile(cfg *config.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	var doc invoiceDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(err, "failed to decode %s", path)
	}

	inv, err := buildInvoice(cfg, &doc)
	if err != nil {
		return errors.Wrapf(err, "failed to build %s", path)
	}

	outPath := outputPath(cfg.OutputDir, path)
	if err := os.WriteFile(outPath, []byte(inv.Render()), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", outPath)
	}

	log.Printf("Rendered %s -> %s", path, outPath)
	return nil
}

func outputPath(outputDir, inputPath string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".xml"
	return filepath.Join(outputDir, base)
}
