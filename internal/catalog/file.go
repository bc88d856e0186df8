// Package catalog reads product snapshots. Fetching from the commerce
// platform is out of scope; this loader consumes the JSON export that fetch
// step writes.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sunward-optics/frametag/internal/domain"
)

// snapshot is the on-disk export shape: either a bare product array or an
// object wrapping one under "products".
type snapshot struct {
	Products []domain.Product `json:"products"`
}

// LoadFile reads a product snapshot from path, preserving catalog order.
func LoadFile(path string) ([]domain.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a snapshot from raw JSON.
func Parse(data []byte) ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err == nil {
		return products, nil
	}

	var wrapped snapshot
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return wrapped.Products, nil
}
