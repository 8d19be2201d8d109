package storage

// Order is one manual production request against a cabuya reference.
type Order struct {
	ID           string  `json:"id"`
	DenierID     *string `json:"denier_id"`
	DenierName   string  `json:"denier_name"`
	CabuyaCodigo string  `json:"cabuya_codigo"`
	TotalKg      float64 `json:"total_kg"`
	ProducedKg   float64 `json:"produced_kg"`
	RequiredDate string  `json:"required_date"`
	Status       string  `json:"status"`
}

// PendingKg is what remains to be produced for this order.
func (o *Order) PendingKg() float64 {
	p := o.TotalKg - o.ProducedKg
	if p < 0 {
		return 0
	}
	return p
}

// Product is a cabuya reference with its inventory position. A reference
// whose stock sits below its safety level generates an automatic backlog
// requirement.
type Product struct {
	Codigo              string  `json:"codigo"`
	Descripcion         string  `json:"descripcion"`
	ReferenciaDenier    string  `json:"referencia_denier"`
	Existencias         float64 `json:"existencias"`
	InventarioSeguridad float64 `json:"inventario_seguridad"`
	Prioridad           bool    `json:"prioridad"`
}

// RequirementKg is the automatic requirement of this product, zero when the
// stock covers the safety level.
func (p *Product) RequirementKg() float64 {
	req := p.InventarioSeguridad - p.Existencias
	if req < 0 {
		return 0
	}
	return req
}
