// Package variant provides a global registry of board variants.
// Built-in variants register themselves in init(), so commands and menus can
// list and create boards without hardcoded dimensions.
package variant

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/connectfour/internal/connectfour"
)

// Default is the ID of the standard 6x7 board.
const Default = "classic"

// Variant describes a board shape.
type Variant struct {
	ID    string
	Title string
	Rows  int
	Cols  int
}

// NewBoard creates an empty board with the variant's dimensions.
func (v Variant) NewBoard() *connectfour.Board {
	b, err := connectfour.NewWithSize(v.Rows, v.Cols)
	if err != nil {
		// Register rejects undersized variants.
		panic(err)
	}
	return b
}

// Size returns the dimensions formatted as "rows x cols".
func (v Variant) Size() string {
	return fmt.Sprintf("%dx%d", v.Rows, v.Cols)
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

func init() {
	Register(Variant{ID: Default, Title: "Classic", Rows: connectfour.DefaultRows, Cols: connectfour.DefaultCols})
	Register(Variant{ID: "mini", Title: "Mini", Rows: 4, Cols: 5})
	Register(Variant{ID: "large", Title: "Large", Rows: 7, Cols: 8})
	Register(Variant{ID: "square", Title: "Square", Rows: 8, Cols: 8})
}

// Register adds a variant to the registry.
// Panics if the ID is empty or taken, or if the board would be smaller than 4x4.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if v.ID == "" {
		panic("variant: empty id")
	}
	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("variant: %q already registered", v.ID))
	}
	if v.Rows < connectfour.ConnectLength || v.Cols < connectfour.ConnectLength {
		panic(fmt.Sprintf("variant: %q has invalid size %s", v.ID, v.Size()))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant registered under id.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("variant: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
