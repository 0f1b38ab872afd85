//go:build ignore

// This script replaces the catalog of a running instance with the products in a JSON file.
// The file uses the catalog shape {"products": [...]}; the instance must read its catalog from MongoDB.
// Run with: go run scripts/push_catalog.go -file catalog.json -url http://localhost:8080/api/products
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/guttosm/checkout-service/internal/catalog"
	"github.com/guttosm/checkout-service/internal/domain/model"
)

func main() {
	file := flag.String("file", "", "catalog JSON file; empty pushes the built-in catalog")
	url := flag.String("url", "http://localhost:8080/api/products", "catalog endpoint")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	body, err := readCatalog(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, *url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending catalog: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	out, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Catalog rejected (%d): %s\n", resp.StatusCode, out)
		os.Exit(1)
	}
	fmt.Printf("Catalog replaced: %s\n", out)
}

func readCatalog(path string) ([]byte, error) {
	products := model.DefaultCatalog()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var parsed catalog.Response
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, err
		}
		products = parsed.Products
	}
	if err := model.ValidateCatalog(products); err != nil {
		return nil, err
	}
	return json.Marshal(catalog.Response{Products: products})
}
