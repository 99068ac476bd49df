package table

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// Direction is the sort direction of a column
type Direction int

const (
	None Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "none"
	}
}

// SortCycle decides what a click on an already descending column does
type SortCycle int

const (
	// CycleToggle flips between ascending and descending forever
	CycleToggle SortCycle = iota
	// CycleTriState goes ascending, descending, then back to provider order
	CycleTriState
)

func (c SortCycle) String() string {
	if c == CycleTriState {
		return "tristate"
	}
	return "toggle"
}

// ParseSortCycle parses the config spelling of a SortCycle
func ParseSortCycle(s string) (SortCycle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "toggle":
		return CycleToggle, nil
	case "tristate", "tri-state":
		return CycleTriState, nil
	default:
		return CycleToggle, fmt.Errorf("unknown sort cycle %q", s)
	}
}

// SortConfig is the active sort key and direction. The zero value means
// provider order.
type SortConfig struct {
	Key       string
	Direction Direction
}

// Active reports whether a sort is applied
func (c SortConfig) Active() bool {
	return c.Direction != None
}

// Next returns the config that follows a sort request on key.
// A new key always starts ascending.
func (c SortConfig) Next(key string, cycle SortCycle) SortConfig {
	if !c.Active() || c.Key != key {
		return SortConfig{Key: key, Direction: Ascending}
	}
	if c.Direction == Ascending {
		return SortConfig{Key: key, Direction: Descending}
	}
	if cycle == CycleTriState {
		return SortConfig{}
	}
	return SortConfig{Key: key, Direction: Ascending}
}

// SortRows returns rows ordered by cfg. With no active sort the input slice
// is returned as is; otherwise a sorted copy is returned and rows is left
// untouched. Equal keys keep their input order. Rows without a value for
// the key go last in both directions.
func SortRows[T Row](rows []T, cfg SortConfig) []T {
	if !cfg.Active() {
		return rows
	}
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		av, aok := a.Field(cfg.Key)
		bv, bok := b.Field(cfg.Key)
		aAbsent := !aok || isAbsent(av)
		bAbsent := !bok || isAbsent(bv)
		switch {
		case aAbsent && bAbsent:
			return 0
		case aAbsent:
			return 1
		case bAbsent:
			return -1
		}
		r := Compare(av, bv)
		if cfg.Direction == Descending {
			return -r
		}
		return r
	})
	return out
}

// kind ranks used when two values are not of the same nature
type rank int

const (
	rankNumber rank = iota
	rankString
	rankBool
	rankTime
	rankOther
	rankAbsent
)

type number struct {
	signed   bool
	unsigned bool
	i        int64
	u        uint64
	f        float64
}

// Compare orders two field values by their natural order and returns -1, 0
// or +1. Numbers compare numerically across int, uint and float kinds,
// strings by bytes, bools false first, times chronologically. Values of
// different natures order number < string < bool < time < other < absent.
// Two values of an unknown nature compare equal.
func Compare(a, b any) int {
	ra, va := normalize(a)
	rb, vb := normalize(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	switch ra {
	case rankNumber:
		return compareNumbers(va.(number), vb.(number))
	case rankString:
		return strings.Compare(va.(string), vb.(string))
	case rankBool:
		x, y := va.(bool), vb.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case rankTime:
		return va.(time.Time).Compare(vb.(time.Time))
	default:
		return 0
	}
}

func isAbsent(v any) bool {
	r, _ := normalize(v)
	return r == rankAbsent
}

func normalize(v any) (rank, any) {
	if v == nil {
		return rankAbsent, nil
	}
	if t, ok := v.(time.Time); ok {
		return rankTime, t
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return rankAbsent, nil
		}
		return normalize(rv.Elem().Interface())
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rankNumber, number{signed: true, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rankNumber, number{unsigned: true, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return rankNumber, number{f: rv.Float()}
	case reflect.String:
		return rankString, rv.String()
	case reflect.Bool:
		return rankBool, rv.Bool()
	}
	if s, ok := v.(fmt.Stringer); ok {
		return rankString, s.String()
	}
	return rankOther, v
}

func compareNumbers(a, b number) int {
	switch {
	case a.signed && b.signed:
		return cmp.Compare(a.i, b.i)
	case a.unsigned && b.unsigned:
		return cmp.Compare(a.u, b.u)
	case a.signed && b.unsigned:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	case a.unsigned && b.signed:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
	return cmp.Compare(a.float(), b.float())
}

func (n number) float() float64 {
	switch {
	case n.signed:
		return float64(n.i)
	case n.unsigned:
		return float64(n.u)
	default:
		return n.f
	}
}
