package model

// Cart is the ephemeral per-identity quantity mapping. It holds no monetary
// data; every read reprices the lines against the current product and offer
// state. It is not persisted in the database.
type Cart struct {
	Items map[int64]int64 `json:"items"`
}

func NewCart() Cart {
	return Cart{Items: map[int64]int64{}}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Clone returns an independent copy so a stored cart can be mutated safely.
func (c Cart) Clone() Cart {
	out := NewCart()
	for id, qty := range c.Items {
		out.Items[id] = qty
	}
	return out
}
