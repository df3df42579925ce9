package rxcounter

import (
	"errors"
	"fmt"
)

func ExampleNewSubject() {
	numbers := NewSubject[int]()

	numbers.Subscribe(Observer[int]{
		Next:     func(v int) { fmt.Println("next", v) },
		Error:    func(err error) { fmt.Println("error", err) },
		Complete: func() { fmt.Println("complete") },
	})

	numbers.Next(1)
	numbers.Next(2)
	numbers.Error(errors.New("boom"))
	numbers.Next(3)

	// Output:
	// next 1
	// next 2
	// error boom
}

func ExampleFilter() {
	numbers := NewSubject[int]()
	evens := Filter(numbers, func(v int) bool { return v%2 == 0 })

	numbers.Subscribe(Observer[int]{
		Next: func(v int) { fmt.Println("raw", v) },
	})
	evens.Subscribe(Observer[int]{
		Next:     func(v int) { fmt.Println("even", v) },
		Complete: func() { fmt.Println("even done") },
	})

	for i := range 4 {
		numbers.Next(i)
	}
	numbers.Complete()

	// Output:
	// raw 0
	// even 0
	// raw 1
	// raw 2
	// even 2
	// raw 3
	// even done
}
