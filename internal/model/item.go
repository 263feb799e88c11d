package model

// Item is an inventory unit. Stock never goes negative; a sale that would
// drive it negative is rejected before any write.
type Item struct {
	ID    string  `json:"id"`
	Kind  Kind    `json:"kind"`
	Name  string  `json:"name"`
	Stock int     `json:"stock"`
	Price float64 `json:"price"`
}

// NewItem creates an item record with a fresh identifier.
func NewItem(name string, stock int, price float64) *Item {
	return &Item{
		ID:    NewID(),
		Kind:  KindItem,
		Name:  name,
		Stock: stock,
		Price: price,
	}
}

func (i *Item) RecordID() string { return i.ID }

func (i *Item) RecordKind() Kind { return KindItem }
