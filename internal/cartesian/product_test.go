package cartesian_test

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/combigen/combigen/internal/cartesian"
)

func (suite *Suite) TestProductOrder() {
	r := suite.Require()

	var combinations [][]any
	for c := range cartesian.Of("a", "b").And(1, 2).And(true, false).Build() {
		values, err := cartesian.AllRemaining[any](c)
		r.NoError(err)
		combinations = append(combinations, values)
	}

	r.Equal(2*2*2, len(combinations))
	r.Equal([]any{"a", 1, true}, combinations[0])
	r.Equal([]any{"a", 1, false}, combinations[1])
	r.Equal([]any{"a", 2, true}, combinations[2])
	r.Equal([]any{"a", 2, false}, combinations[3])
	r.Equal([]any{"b", 1, true}, combinations[4])
	r.Equal([]any{"b", 1, false}, combinations[5])
	r.Equal([]any{"b", 2, true}, combinations[6])
	r.Equal([]any{"b", 2, false}, combinations[7])
}

func (suite *Suite) TestProductFourDimensions() {
	r := suite.Require()

	var combinations [][]any
	product := cartesian.Of("a", "b").And(1, 2).And(1.1, 2.2).And(true, false).Product()
	for {
		c, ok := product.Next()
		if !ok {
			break
		}
		values, err := cartesian.AllRemaining[any](c)
		r.NoError(err)
		combinations = append(combinations, values)
	}

	r.Equal(16, len(combinations))
	r.Equal([]any{"a", 1, 1.1, true}, combinations[0])
	// ("a", 2, 2.2, false) carries into the first dimension.
	r.Equal([]any{"a", 2, 2.2, false}, combinations[7])
	r.Equal([]any{"b", 1, 1.1, true}, combinations[8])

	// Drained for good.
	_, ok := product.Next()
	r.False(ok)
	_, ok = product.Next()
	r.False(ok)
}

func (suite *Suite) TestProductSingleDimension() {
	r := suite.Require()

	var values []string
	for c := range cartesian.Of("x", "y", "z").Build() {
		v, err := c.NextString()
		r.NoError(err)
		r.False(c.HasNext())
		values = append(values, v)
	}
	r.Equal([]string{"x", "y", "z"}, values)
}

func (suite *Suite) TestProductEmptyDimension() {
	r := suite.Require()

	product := cartesian.Of(1, 2).And().And("a", "b").Product()
	r.Equal(uint64(0), product.Size())
	c, ok := product.Next()
	r.False(ok)
	r.Nil(c)
}

func (suite *Suite) TestProductUniqueCoverage() {
	r := suite.Require()

	seen := make(map[string]int)
	count := 0
	for c := range cartesian.Of(1, 2, 3).And("a", "b", "c").And(true, false).Build() {
		values, err := cartesian.AllRemaining[any](c)
		r.NoError(err)
		seen[fmt.Sprint(values)]++
		count++
	}
	r.Equal(3*3*2, count)
	r.Equal(3*3*2, len(seen))
	for key, n := range seen {
		r.Equal(1, n, key)
	}
}

func (suite *Suite) TestProductConcurrentPulls() {
	r := suite.Require()

	builder := cartesian.Of(1, 2, 3, 4, 5).And("a", "b", "c", "d").And(true, false).And(1.1, 2.2, 3.3)

	var wanted []string
	for c := range builder.Build() {
		values, _ := cartesian.AllRemaining[any](c)
		wanted = append(wanted, fmt.Sprint(values))
	}

	product := builder.Product()
	var mu sync.Mutex
	var got []string
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				c, ok := product.Next()
				if !ok {
					return
				}
				values, _ := cartesian.AllRemaining[any](c)
				mu.Lock()
				got = append(got, fmt.Sprint(values))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Interleaving order is unspecified. The multiset is not.
	sort.Strings(wanted)
	sort.Strings(got)
	r.Equal(wanted, got)
}

func (suite *Suite) TestEstimateSize() {
	r := suite.Require()

	r.Equal(uint64(60), cartesian.EstimateSize([]int{3, 4, 5}))
	r.Equal(uint64(1), cartesian.EstimateSize([]int{1}))
	r.Equal(uint64(0), cartesian.EstimateSize(nil))
	r.Equal(uint64(0), cartesian.EstimateSize([]int{4, 0, 5}))
}

func (suite *Suite) TestEstimateSizeSaturates() {
	r := suite.Require()

	huge := 1 << 40
	r.Equal(uint64(math.MaxUint64), cartesian.EstimateSize([]int{huge, huge, huge}))
	// 2^40 times 2^20 still fits in 64 bits.
	r.Equal(uint64(1)<<60, cartesian.EstimateSize([]int{huge, 1 << 20}))
}
