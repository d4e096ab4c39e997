// Command life-census runs every requested pattern headlessly and reports
// its population range and cycle structure: how many generations of
// transient before the board state repeats, and the cycle length once it
// does.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"golife/pkg/life"
)

type nameList []string

func (l *nameList) String() string {
	return strings.Join(*l, ",")
}

func (l *nameList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type censusResult struct {
	name      string
	seedPop   int
	minPop    int
	maxPop    int
	period    int
	transient int
	steps     int
	elapsed   time.Duration
	err       error
}

func main() {
	width := flag.Int("width", 48, "board width in cells")
	height := flag.Int("height", 48, "board height in cells")
	steps := flag.Int("steps", 512, "maximum generations to run per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel pattern runs")
	var names nameList
	flag.Var(&names, "pattern", "pattern to census (repeatable; default all)")
	flag.Parse()

	selected := []string(names)
	if len(selected) == 0 {
		for name := range life.Patterns() {
			selected = append(selected, name)
		}
	}
	sort.Strings(selected)

	fmt.Printf("Censusing %d patterns on a %dx%d board (%d workers, up to %d steps)\n",
		len(selected), *width, *height, *workers, *steps)

	jobs := make(chan string)
	results := make(chan censusResult)
	var wg sync.WaitGroup

	n := *workers
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range jobs {
				results <- runCensus(name, *width, *height, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, name := range selected {
			jobs <- name
		}
		close(jobs)
	}()

	var all []censusResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].name < all[j].name })

	for _, res := range all {
		if res.err != nil {
			fmt.Printf("%-12s %v\n", res.name, res.err)
			continue
		}
		if res.period > 0 {
			fmt.Printf("%-12s seed pop %-3d range %d..%-3d cycle %d after %d transient steps (%s)\n",
				res.name, res.seedPop, res.minPop, res.maxPop, res.period, res.transient, res.elapsed.Round(time.Microsecond))
			continue
		}
		fmt.Printf("%-12s seed pop %-3d range %d..%-3d no cycle within %d steps (%s)\n",
			res.name, res.seedPop, res.minPop, res.maxPop, res.steps, res.elapsed.Round(time.Microsecond))
	}
}

func runCensus(name string, width, height, steps int) censusResult {
	res := censusResult{name: name}
	p, ok := life.Patterns()[name]
	if !ok {
		res.err = fmt.Errorf("unknown pattern %q", name)
		return res
	}

	start := time.Now()
	grid, err := p.NewGrid(width, height)
	if err != nil {
		res.err = err
		return res
	}

	cells := grid.LiveCells()
	res.seedPop = len(cells)
	res.minPop = len(cells)
	res.maxPop = len(cells)

	seen := map[string]int{fingerprint(cells): 0}
	for s := 1; s <= steps; s++ {
		grid.Step()
		cells = grid.LiveCells()
		if len(cells) < res.minPop {
			res.minPop = len(cells)
		}
		if len(cells) > res.maxPop {
			res.maxPop = len(cells)
		}
		key := fingerprint(cells)
		if first, ok := seen[key]; ok {
			res.period = s - first
			res.transient = first
			res.steps = s
			res.elapsed = time.Since(start)
			return res
		}
		seen[key] = s
	}
	res.steps = steps
	res.elapsed = time.Since(start)
	return res
}

// fingerprint serializes a live-cell snapshot. Row-major enumeration makes
// the string a stable key for an entire board state.
func fingerprint(cells []life.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(strconv.FormatInt(c.X, 10))
		b.WriteByte(',')
		b.WriteString(strconv.FormatInt(c.Y, 10))
		b.WriteByte(';')
	}
	return b.String()
}
