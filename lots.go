package household

// lot represents a single purchase of an instrument, used for cost basis
// calculations. Lots are ephemeral: rebuilt from the trade history on every
// call and discarded after use.
type lot struct {
	Quantity Quantity
	Cost     Money // total cost of the lot, fee included
}

type lots []lot

// buy appends a new lot at the back of the queue.
func (l lots) buy(quantity Quantity, cost Money) lots {
	return append(l, lot{Quantity: quantity, Cost: cost})
}

// sell reduces the available lots by a given quantity using FIFO: oldest
// lots are consumed first, and a partially consumed lot keeps a
// proportional share of its cost. Selling more than is held simply drains
// the queue; the position clamps at zero rather than going short.
func (l lots) sell(quantityToSell Quantity) lots {
	var remaining lots
	for _, currentLot := range l {
		if !quantityToSell.IsPositive() {
			remaining = append(remaining, currentLot)
			continue
		}
		if currentLot.Quantity.GreaterThan(quantityToSell) {
			// Partial sale from this lot
			costOfSoldPortion := currentLot.Cost.Mul(quantityToSell).Div(currentLot.Quantity)
			remaining = append(remaining, lot{
				Quantity: currentLot.Quantity.Sub(quantityToSell),
				Cost:     currentLot.Cost.Sub(costOfSoldPortion),
			})
			quantityToSell = Q(0)
		} else {
			// Full sale of this lot
			quantityToSell = quantityToSell.Sub(currentLot.Quantity)
		}
	}
	return remaining
}

// quantity sums the remaining quantity across all lots.
func (l lots) quantity() Quantity {
	var total Quantity
	for _, currentLot := range l {
		total = total.Add(currentLot.Quantity)
	}
	return total
}

// cost sums the remaining cost across all lots.
func (l lots) cost() Money {
	var total Money
	for _, currentLot := range l {
		total = total.Add(currentLot.Cost)
	}
	return total
}
