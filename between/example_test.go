package between_test

import (
	"fmt"

	"github.com/lexkey/lexkey/between"
)

// ExampleNew builds an alphabet from unsorted input; symbols are
// deduplicated and sorted ascending by code point.
func ExampleNew() {
	a, err := between.New([]rune("cbac"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(string(a.Symbols()))
	fmt.Printf("low=%c high=%c\n", a.Low(), a.High())
	// Output:
	// abc
	// low=a high=c
}

// ExampleAlphabet_Between inserts twice between the same neighbors: each
// new key immediately becomes a boundary for the next insertion.
func ExampleAlphabet_Between() {
	a := between.Default()

	key, _ := a.Between("A", "B")
	fmt.Println(key)

	next, _ := a.Between("A", key)
	fmt.Println(next)
	// Output:
	// AV
	// AF
}

// ExampleAlphabet_After appends to the end of an ordered list; once the
// boundary is the high rune itself, no successor exists.
func ExampleAlphabet_After() {
	a := between.Default()

	key, ok := a.After("z")
	fmt.Println(key, ok)

	_, ok = a.After("~")
	fmt.Println(ok)
	// Output:
	// zV true
	// false
}

// ExampleAlphabet_Spread seeds an ordered list with several keys at once,
// leaving room between every pair.
func ExampleAlphabet_Spread() {
	a, err := between.New([]rune("01"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	keys, _ := a.Spread("0", "1", 3)
	fmt.Println(keys)
	// Output:
	// [001 01 011]
}
