package react

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignal(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		count := NewSignal(0)
		assert.Equal(t, 0, count.Read())

		count.Write(10)
		assert.Equal(t, 10, count.Read())
	})

	t.Run("computed derives from signals", func(t *testing.T) {
		count := NewSignal(1)
		double, err := NewComputed(func(v []int) int {
			return v[0] * 2
		}, count.ID())
		assert.NoError(t, err)

		plustwo, err := NewComputed(func(v []int) int {
			return v[0] + 2
		}, double.ID())
		assert.NoError(t, err)

		assert.Equal(t, 2, double.Read())
		assert.Equal(t, 4, plustwo.Read())

		count.Write(10)
		assert.Equal(t, 20, double.Read())
		assert.Equal(t, 22, plustwo.Read())
	})

	t.Run("rejects unknown dependencies", func(t *testing.T) {
		_, err := NewComputed(func(v []int) int {
			return v[0]
		}, ComputeCellID(9999))

		var depErr *UnknownDependencyError
		assert.ErrorAs(t, err, &depErr)
		assert.Equal(t, ComputeCellID(9999), depErr.Dep)
	})

	t.Run("observes changes", func(t *testing.T) {
		log := []string{}

		count := NewSignal(1)
		double, _ := NewComputed(func(v []int) int {
			return v[0] * 2
		}, count.ID())

		cb := double.OnChange(func(v int) {
			log = append(log, fmt.Sprintf("changed %d", v))
		})

		count.Write(2)
		assert.NoError(t, double.RemoveOnChange(cb))
		count.Write(3)

		assert.Equal(t, []string{"changed 4"}, log)
	})

	t.Run("batches writes", func(t *testing.T) {
		log := []int{}

		a := NewSignal(1)
		b := NewSignal(2)
		sum, _ := NewComputed(func(v []int) int {
			return v[0] + v[1]
		}, a.ID(), b.ID())

		sum.OnChange(func(v int) {
			log = append(log, v)
		})

		NewBatch[int](func() {
			a.Write(10)
			b.Write(20)
		})

		assert.Equal(t, []int{30}, log)
	})

	t.Run("each goroutine gets its own reactor", func(t *testing.T) {
		var wg sync.WaitGroup

		mine := Default[int]()
		var theirs *Reactor[int]

		wg.Add(1)
		go func() {
			defer wg.Done()
			theirs = Default[int]()
			count := NewSignal(99)
			assert.Equal(t, 99, count.Read())
		}()

		wg.Wait()
		assert.NotSame(t, mine, theirs)
	})
}
