package sample

import "time"

// TimestampLayout is the display format for Reading timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Reading is one immutable simulated measurement. Values is keyed by field
// name; the field set is defined by the Variant that produced the Reading.
type Reading struct {
	At     time.Time
	Values map[string]float64
}

// Timestamp returns the wall-clock time formatted as YYYY-MM-DD HH:MM:SS.
func (r Reading) Timestamp() string {
	return r.At.Format(TimestampLayout)
}

// Value returns the named field value and whether the field exists.
func (r Reading) Value(field string) (float64, bool) {
	v, ok := r.Values[field]
	return v, ok
}

// clone returns a deep copy so callers can never mutate buffered state.
func (r Reading) clone() Reading {
	values := make(map[string]float64, len(r.Values))
	for k, v := range r.Values {
		values[k] = v
	}
	return Reading{At: r.At, Values: values}
}

// FieldSpec describes one numeric field: its unit, the inclusive range new
// samples are drawn from, and the number of decimals values are rounded to.
type FieldSpec struct {
	Name      string
	Unit      string
	Min       float64
	Max       float64
	Precision int
}

// Variant is a named dashboard configuration: which fields each Reading
// carries and which field the chart trends by default.
type Variant struct {
	Name       string
	Title      string
	Fields     []FieldSpec
	TrendField string
}

// Field returns the spec for the named field.
func (v Variant) Field(name string) (FieldSpec, bool) {
	for _, f := range v.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// Builtin variants, mirroring the three simulated data sets.
var (
	Stock = Variant{
		Name:  "stock",
		Title: "Live Stock Price",
		Fields: []FieldSpec{
			{Name: "price", Unit: "USD", Min: 100, Max: 150, Precision: 2},
		},
		TrendField: "price",
	}

	Weather = Variant{
		Name:  "weather",
		Title: "Antarctic Weather Station",
		Fields: []FieldSpec{
			{Name: "temp", Unit: "°C", Min: -18, Max: -16, Precision: 1},
			{Name: "humidity", Unit: "%", Min: 70, Max: 90, Precision: 1},
			{Name: "pressure", Unit: "hPa", Min: 980, Max: 1020, Precision: 1},
		},
		TrendField: "temp",
	}

	Penguins = Variant{
		Name:  "penguins",
		Title: "Penguin Colony Census",
		Fields: []FieldSpec{
			{Name: "population", Unit: "birds", Min: 1200, Max: 1500, Precision: 0},
			{Name: "food", Unit: "kg", Min: 50, Max: 100, Precision: 0},
			{Name: "chicks", Unit: "chicks", Min: 180, Max: 320, Precision: 0},
		},
		TrendField: "population",
	}
)

// Variants lists the builtin variants in display order.
var Variants = []Variant{Stock, Weather, Penguins}

// VariantByName looks up a builtin variant by its config name.
func VariantByName(name string) (Variant, bool) {
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
