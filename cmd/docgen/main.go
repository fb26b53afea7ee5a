// Command docgen renders a JSON-encoded job letter or bill to a PDF file.
//
//	docgen -type letter -in letter.json
//	docgen -type bill -in bill.json -out-dir ./invoices
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	docsgen "github.com/gourav-1711/docs-genrator"
	"github.com/gourav-1711/docs-genrator/model"
)

func main() {
	var (
		docType    = flag.String("type", "bill", "document type: letter or bill")
		inPath     = flag.String("in", "", "path to the JSON document (required)")
		outDir     = flag.String("out-dir", "", "output directory (overrides config)")
		configPath = flag.String("config", "", "path to a docgen config file")
	)
	flag.Parse()

	if err := run(*docType, *inPath, *outDir, *configPath); err != nil {
		fmt.Fprintln(os.Stderr, "docgen:", err)
		os.Exit(1)
	}
}

func run(docType, inPath, outDir, configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	log := newLogger(cfg.Env)
	defer func() { _ = log.Sync() }()

	if inPath == "" {
		return fmt.Errorf("missing required -in flag")
	}
	if outDir == "" {
		outDir = cfg.OutDir
	}

	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	opts := renderOptions(cfg.Page)

	var pdf []byte
	var name string
	switch docType {
	case "letter":
		doc := model.DefaultJobLetter()
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parsing job letter: %w", err)
		}
		pdf, name, err = docsgen.RenderJobLetter(&doc, opts...)
	case "bill":
		doc := model.DefaultBill()
		applyShopDefaults(&doc, cfg.Shop)
		if err := json.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parsing bill: %w", err)
		}
		pdf, name, err = docsgen.RenderBill(&doc, opts...)
	default:
		return fmt.Errorf("unknown document type %q (want letter or bill)", docType)
	}
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, name)
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Info("document rendered",
		zap.String("type", docType),
		zap.String("out", outPath),
		zap.Int("bytes", len(pdf)),
	)
	return nil
}

// newLogger builds a zap logger matching the environment.
func newLogger(env string) *zap.Logger {
	if env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

func renderOptions(page PageConfig) []docsgen.Option {
	var opts []docsgen.Option
	if page.Width > 0 && page.Height > 0 {
		opts = append(opts, docsgen.WithPageSize(page.Width, page.Height))
	}
	if page.Margin > 0 {
		opts = append(opts, docsgen.WithMargin(page.Margin))
	}
	return opts
}

// applyShopDefaults replaces the stock shop identity with the configured
// one. It runs before the JSON overlay, so document-supplied values still
// win.
func applyShopDefaults(bill *model.Bill, shop model.ShopIdentity) {
	if shop.Name != "" {
		bill.ShopDetails.Name = shop.Name
	}
	if shop.Address != "" {
		bill.ShopDetails.Address = shop.Address
	}
	if shop.Email != "" {
		bill.ShopDetails.Email = shop.Email
	}
	if len(shop.Phones) > 0 {
		bill.ShopDetails.Phones = shop.Phones
	}
}
