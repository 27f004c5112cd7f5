// Command measure runs a mixed delete/query workload against every tree of
// package Trees and a left-leaning red-black baseline, printing the mean and
// standard deviation of the time per operation batch.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/g-m-twostay/bstrees/Trees"
	"github.com/petar/GoLLRB/llrb"
)

var (
	bAddN = 100000
	bRmvN = bAddN
	bQryN = bRmvN
)
var _R = rand.New(rand.NewSource(0))

// set is the part of a tree the workload needs.
type set interface {
	Insert(int) error
	Delete(int) error
	HasItem(int) bool
}

type lrb struct{ *llrb.LLRB }

func (u lrb) Insert(v int) error { u.ReplaceOrInsert(llrb.Int(v)); return nil }
func (u lrb) Delete(v int) error { u.LLRB.Delete(llrb.Int(v)); return nil }
func (u lrb) HasItem(v int) bool { return u.Has(llrb.Int(v)) }

var candidates = []struct {
	name string
	make func() set
}{
	{"avl", func() set { t, _ := Trees.NewAVLTree[int, uint32](); return t }},
	{"rb", func() set { t, _ := Trees.NewRBTree[int, uint32](); return t }},
	{"splay", func() set { t, _ := Trees.NewSplayTree[int, uint32](); return t }},
	{"treap", func() set { t, _ := Trees.NewTreap[int, uint32](); return t }},
	{"avl+hashmap", func() set { t, _ := Trees.NewAVLTree[int, uint32](Trees.Config{Index: Trees.HashMapIndex}); return t }},
	{"llrb", func() set { return lrb{llrb.New()} }},
}

func create(mk func() set, all []int) (set, []int) {
	tree := mk()
	for range bAddN {
		a := _R.Intn(bAddN * 4)
		if tree.Insert(a) == nil {
			all = append(all, a)
		}
	}
	return tree, all
}

var __r1 bool

func delQry(mk func() set) func(*testing.B) {
	return func(b *testing.B) {
		all := make([]int, 0, bAddN)
		for range b.N {
			b.StopTimer()
			var tree set
			tree, all = create(mk, all[:0])
			rmv := min(bRmvN, len(all))
			b.StartTimer()
			for _, v := range all[:rmv] {
				_ = tree.Delete(v)
			}
			for _, v := range all[rmv:] {
				__r1 = tree.HasItem(v)
			}
			for range bQryN {
				__r1 = tree.HasItem(_R.Intn(bAddN * 4))
			}
		}
	}
}

const bNumSteps = 10

func main() {
	testing.Init()
	for _, c := range candidates {
		var cs []float64
		var N int
		for i := 1; i < bNumSteps; i++ {
			bRmvN = bAddN / bNumSteps * i
			bQryN = bRmvN
			br := testing.Benchmark(delQry(c.make))
			cs = append(cs, float64(br.T.Milliseconds()))
			N += br.N
		}
		var sum float64
		for _, v := range cs {
			sum += v
		}
		avg := sum / float64(N)
		sum = 0
		for _, v := range cs {
			a := v - avg
			sum += a * a
		}
		fmt.Printf("%-12s average: %fms/op stddev: %fms/op\n", c.name, avg, math.Sqrt(sum/float64(N)))
	}
}
