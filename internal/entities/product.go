package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/google/uuid"
)

type SizeStock struct {
	Size  string
	Stock int
}

type Product struct {
	ID           uuid.UUID
	SKU          string
	Name         string
	Description  string
	Price        int
	MainCategory string
	SubCategory  string
	Brand        string
	IsActive     bool
	IsFeatured   bool
	Sizes        []SizeStock
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasSize reports whether the product carries the size at all,
// regardless of remaining stock.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s.Size == size {
			return true
		}
	}
	return false
}

func (p *Product) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (p *Product) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	return dec.Decode(p)
}

func init() {
	gob.Register(Product{})
	gob.Register(SizeStock{})
}
