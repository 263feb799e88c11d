package model

// Sale is an immutable fact recorded when stock is sold. ProductID may
// dangle after the referenced item is deleted; historical sales are not
// invalidated by later inventory changes.
type Sale struct {
	ID        string  `json:"id"`
	Kind      Kind    `json:"kind"`
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Total     float64 `json:"total"`
	Timestamp string  `json:"timestamp"`
}

// NewSale creates a sale record with a fresh identifier.
func NewSale(productID string, quantity int, total float64, timestamp string) *Sale {
	return &Sale{
		ID:        NewID(),
		Kind:      KindSale,
		ProductID: productID,
		Quantity:  quantity,
		Total:     total,
		Timestamp: timestamp,
	}
}

func (s *Sale) RecordID() string { return s.ID }

func (s *Sale) RecordKind() Kind { return KindSale }
