package product

// IncreasePrice raises the price of every product by percentage percent.
// It works on the stored price, so variants reporting a derived price are raised by the same factor.
// It stops at the first product that rejects its new price.
func IncreasePrice(products []Interface, percentage float64) error {
	for _, p := range products {
		price := p.Snapshot().Price

		if err := p.ChangePrice(price + price*percentage/100); err != nil {
			return err
		}
	}

	return nil
}
