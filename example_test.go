package arena

import (
	"fmt"
	"sync"
)

// Example demonstrates basic arena usage.
func Example() {
	a, err := New()
	if err != nil {
		panic(err)
	}
	defer a.Destroy()

	// Allocate raw bytes
	buf, _ := a.Alloc(1024)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// Allocate a typed value (zeroed)
	p, _ := Alloc[int](a)
	*p = 42
	fmt.Printf("Allocated int with value: %d\n", *p)

	// Allocate a slice
	xs, _ := AllocSlice[int](a, 5)
	for i := range xs {
		xs[i] = i * 2
	}
	fmt.Printf("Allocated slice: %v\n", xs)

	// Check memory usage
	fmt.Printf("Total used: %d bytes\n", a.TotalUsed())
	fmt.Printf("Utilization: %.2f%%\n", a.Utilization()*100)

	// Release everything, keep the blocks
	a.Clear()
	fmt.Printf("After clear, total used: %d bytes\n", a.TotalUsed())

	// Output:
	// Allocated buffer of size: 1024
	// Allocated int with value: 42
	// Allocated slice: [0 2 4 6 8]
	// Total used: 1072 bytes
	// Utilization: 1.64%
	// After clear, total used: 0 bytes
}

// ExampleArena_TempBegin demonstrates scratch allocations that are rewound
// when the scope ends.
func ExampleArena_TempBegin() {
	a, err := New()
	if err != nil {
		panic(err)
	}
	defer a.Destroy()

	a.Alloc(100)

	tmp := a.TempBegin()
	a.Alloc(1000) // scratch, padded to the next aligned offset
	fmt.Printf("inside scope: %d bytes\n", a.TotalUsed())
	tmp.End()
	fmt.Printf("after rewind: %d bytes\n", a.TotalUsed())

	// Output:
	// inside scope: 1104 bytes
	// after rewind: 100 bytes
}

// ExampleNewWithConfig demonstrates a fixed-size arena that refuses to grow.
func ExampleNewWithConfig() {
	cfg := DefaultConfig()
	cfg.BlockSize = 1024
	cfg.FixedSize = true

	a, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	defer a.Destroy()

	_, err = a.Alloc(2048)
	fmt.Println(err)
	fmt.Println(ErrorString(a.LastError()))

	// Output:
	// arena: out of memory
	// out of memory
}

// ExampleSafeArena demonstrates concurrent use through the mutex-guarded
// wrapper.
func ExampleSafeArena() {
	s, err := NewSafe()
	if err != nil {
		panic(err)
	}
	defer s.Destroy()

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if _, err := s.Alloc(64); err != nil {
					return
				}
			}
		}()
	}
	wg.Wait()

	fmt.Printf("total used: %d bytes\n", s.TotalUsed())

	// Output:
	// total used: 25600 bytes
}

// ExampleArena_Resize demonstrates the tail-only in-place resize rule.
func ExampleArena_Resize() {
	a, err := New()
	if err != nil {
		panic(err)
	}
	defer a.Destroy()

	buf, _ := a.Alloc(100)
	grown, _ := a.Resize(buf, 200) // most recent allocation: grows in place
	fmt.Println("same address:", &buf[0] == &grown[0])

	a.Alloc(8)                       // buf is no longer the tail
	moved, _ := a.Resize(grown, 300) // now it relocates
	fmt.Println("same address:", &grown[0] == &moved[0])

	// Output:
	// same address: true
	// same address: false
}
