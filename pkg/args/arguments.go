// SPDX-License-Identifier: AGPL-3.0-or-later

package args

// Arguments is the result of one scan. It is read-only once returned.
type Arguments struct {
	values map[rune]Value
	found  []rune
}

func newArguments() *Arguments {
	return &Arguments{values: make(map[rune]Value)}
}

func (a *Arguments) set(id rune, v Value) {
	if _, ok := a.values[id]; !ok {
		a.found = append(a.found, id)
	}
	a.values[id] = v
}

// GetBoolean returns the value of boolean flag id, or false.
func (a *Arguments) GetBoolean(id rune) bool {
	return a.values[id].Bool()
}

// GetInt returns the value of integer flag id, or 0.
func (a *Arguments) GetInt(id rune) int {
	return a.values[id].Int()
}

// GetString returns the value of string flag id, or "".
func (a *Arguments) GetString(id rune) string {
	return a.values[id].Str()
}

// Value returns the resolved value for id if it was supplied.
func (a *Arguments) Value(id rune) (Value, bool) {
	v, ok := a.values[id]
	return v, ok
}

// Has reports whether id was supplied on the command line.
func (a *Arguments) Has(id rune) bool {
	_, ok := a.values[id]
	return ok
}

// Cardinality returns the number of distinct flags supplied.
func (a *Arguments) Cardinality() int {
	return len(a.found)
}

// Found returns the supplied identifiers in the order they first appeared.
func (a *Arguments) Found() []rune {
	out := make([]rune, len(a.found))
	copy(out, a.found)
	return out
}
