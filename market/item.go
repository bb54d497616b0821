// SPDX-License-Identifier: MIT

package market

import "math"

// Home is the index of the home port: start and mandatory end of every route.
const Home = 0

// Item is one merchandise type as offered at one port.
type Item struct {
	Weight float64 `yaml:"weight" json:"weight"`
	Buy    float64 `yaml:"buy" json:"buy"`
	Sell   float64 `yaml:"sell" json:"sell"`
}

// Sentinel returns the "not traded here" item: {+Inf, +Inf, −Inf}.
func Sentinel() Item {
	return Item{Weight: math.Inf(1), Buy: math.Inf(1), Sell: math.Inf(-1)}
}

// Available reports whether the item can ever be bought (finite weight and price).
func (it Item) Available() bool {
	return !math.IsInf(it.Weight, 1) && !math.IsInf(it.Buy, 1)
}

// Merchandise is one owned unit of cargo.
type Merchandise struct {
	Port   int     `yaml:"port" json:"port"`     // port of purchase
	Kind   int     `yaml:"kind" json:"kind"`     // item-type index
	Weight float64 `yaml:"weight" json:"weight"` // weight at purchase
	Price  float64 `yaml:"price" json:"price"`   // purchase price
}

// Unit builds the Merchandise bought when taking item kind at port.
func Unit(port, kind int, it Item) Merchandise {
	return Merchandise{Port: port, Kind: kind, Weight: it.Weight, Price: it.Buy}
}
