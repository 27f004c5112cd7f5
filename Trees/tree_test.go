package Trees

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var rg = rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

type strategy struct {
	name  string
	make  func(cfg ...Config) (Tree[int, uint32], error)
	build func(s []int, cfg ...Config) (Tree[int, uint32], error)
}

var strategies = []strategy{
	{
		"AVL",
		func(cfg ...Config) (Tree[int, uint32], error) { return NewAVLTree[int, uint32](cfg...) },
		func(s []int, cfg ...Config) (Tree[int, uint32], error) { return BuildAVLTree[int, uint32](s, cfg...) },
	},
	{
		"RB",
		func(cfg ...Config) (Tree[int, uint32], error) { return NewRBTree[int, uint32](cfg...) },
		func(s []int, cfg ...Config) (Tree[int, uint32], error) { return BuildRBTree[int, uint32](s, cfg...) },
	},
	{
		"Splay",
		func(cfg ...Config) (Tree[int, uint32], error) { return NewSplayTree[int, uint32](cfg...) },
		func(s []int, cfg ...Config) (Tree[int, uint32], error) { return BuildSplayTree[int, uint32](s, cfg...) },
	},
	{
		"Treap",
		func(cfg ...Config) (Tree[int, uint32], error) { return NewTreap[int, uint32](cfg...) },
		func(s []int, cfg ...Config) (Tree[int, uint32], error) { return BuildTreap[int, uint32](s, cfg...) },
	},
}

var indexKinds = []IndexKind{NoIndex, HashMapIndex}

// forEachTree runs f on a fresh empty tree of every strategy and index kind.
func forEachTree(t *testing.T, f func(t *testing.T, tree Tree[int, uint32])) {
	for _, s := range strategies {
		for _, k := range indexKinds {
			t.Run(fmt.Sprintf("%s/%v", s.name, k), func(t *testing.T) {
				tree, err := s.make(Config{Index: k})
				if err != nil {
					t.Fatalf("cannot create tree: %v", err)
				}
				f(t, tree)
			})
		}
	}
}

func randomValues(n, valRange int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rg.Intn(valRange)
	}
	return a
}

func mustCheck(t *testing.T, tree Tree[int, uint32]) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("corrupt tree: %v", err)
	}
}

func TestTree_Add(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bstrees")
	defer teardown()
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		content := make(map[int]struct{})
		for _, b := range randomValues(tAddN, tAddValRange) {
			_, in := content[b]
			err := tree.Insert(b)
			if in && !errors.Is(err, ErrDuplicateKey) {
				t.Errorf("inserting duplicate %v: got %v, want ErrDuplicateKey", b, err)
			} else if !in && err != nil {
				t.Errorf("failed to insert key %v: %v", b, err)
			}
			content[b] = struct{}{}
		}
		if int(tree.Count()) != len(content) {
			t.Errorf("tree size is %d, want %d", tree.Count(), len(content))
		}
		for k := range content {
			if !tree.HasItem(k) {
				t.Errorf("tree does not have key %v", k)
			}
		}
		for v := range tree.Ascend() {
			if _, in := content[v]; !in {
				t.Errorf("tree has non existent key %v", v)
			}
		}
		mustCheck(t, tree)
	})
}

func TestTree_Del(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		if err := tree.Delete(0); !errors.Is(err, ErrItemNotFound) {
			t.Errorf("deleting from empty tree: got %v, want ErrItemNotFound", err)
		}
		content := make(map[int]struct{})
		a := randomValues(tAddN, tAddValRange)
		for _, b := range a {
			_ = tree.Insert(b)
			content[b] = struct{}{}
		}
		for i := range rg.Intn(len(a)) {
			_, in := content[a[i]]
			if err := tree.Delete(a[i]); (err == nil) != in {
				t.Errorf("failed to delete key %v: %v", a[i], err)
			}
			if err := tree.Delete(a[i]); !errors.Is(err, ErrItemNotFound) {
				t.Errorf("can delete a second time key %v", a[i])
			}
			delete(content, a[i])
			if i%97 == 0 {
				mustCheck(t, tree)
			}
		}
		if int(tree.Count()) != len(content) {
			t.Errorf("tree size is %d, want %d", tree.Count(), len(content))
		}
		for k := range content {
			if !tree.Contains(k) {
				t.Errorf("tree does not have key %v", k)
			}
		}
		mustCheck(t, tree)
	})
}

func TestTree_AddDel(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		content := make(map[int]struct{})
		for round := range 4 {
			a := randomValues(rg.Intn(tAddN)+1, tAddValRange)
			for _, b := range a {
				_ = tree.Insert(b)
				content[b] = struct{}{}
			}
			for i := range rg.Intn(len(a)) {
				_ = tree.Delete(a[i])
				delete(content, a[i])
			}
			if int(tree.Count()) != len(content) {
				t.Fatalf("round %d: tree size is %d, want %d", round, tree.Count(), len(content))
			}
			mustCheck(t, tree)
		}
		want := make([]int, 0, len(content))
		for k := range content {
			want = append(want, k)
		}
		slices.Sort(want)
		if got := slices.Collect(tree.Ascend()); !slices.Equal(got, want) {
			t.Errorf("in-order values differ from content")
		}
	})
}

func TestTree_InOrder(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		for _, b := range randomValues(tAddN, tAddValRange) {
			_ = tree.Insert(b)
		}
		asc := slices.Collect(tree.Ascend())
		if len(asc) != int(tree.Count()) {
			t.Fatalf("sorted size is %d, want %d", len(asc), tree.Count())
		}
		if !slices.IsSorted(asc) {
			t.Fatalf("sorted is not sorted")
		}
		desc := slices.Collect(tree.Descend())
		slices.Reverse(desc)
		if !slices.Equal(asc, desc) {
			t.Errorf("descending traversal is not the reverse of the ascending one")
		}
		f := tree.InOrder()
		var s []int
		for v, ok := f(); ok; v, ok = f() {
			s = append(s, v)
		}
		if _, ok := f(); ok {
			t.Errorf("exhausted iterator became valid again")
		}
		if !slices.Equal(asc, s) {
			t.Errorf("InOrder differs from Ascend")
		}
		// sequences are restartable and stop early.
		for range 3 {
			var part []int
			stop := rg.Intn(len(asc))
			for v := range tree.Ascend() {
				if len(part) == stop {
					break
				}
				part = append(part, v)
			}
			if !slices.Equal(part, asc[:stop]) {
				t.Errorf("partial traversal differs")
			}
		}
	})
}

func TestTree_RankSelect(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		for _, b := range randomValues(tAddN, tAddValRange) {
			_ = tree.Insert(b)
		}
		values := slices.Collect(tree.Ascend())
		for k, v := range values {
			r, err := tree.IndexOf(v)
			if err != nil || int(r) != k {
				t.Fatalf("IndexOf(%d) = %d, %v; want %d", v, r, err, k)
			}
			e, err := tree.ElementAt(uint32(k))
			if err != nil || e != v {
				t.Fatalf("ElementAt(%d) = %d, %v; want %d", k, e, err, v)
			}
		}
		if _, err := tree.IndexOf(-1); !errors.Is(err, ErrItemNotFound) {
			t.Errorf("IndexOf(-1): got %v, want ErrItemNotFound", err)
		}
		if _, err := tree.ElementAt(tree.Count()); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ElementAt(Count()): got %v, want ErrIndexOutOfRange", err)
		}
		mustCheck(t, tree)
	})
}

func TestTree_MinMax(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		if _, err := tree.FindMin(); !errors.Is(err, ErrEmptyTree) {
			t.Errorf("FindMin on empty tree: got %v, want ErrEmptyTree", err)
		}
		if _, err := tree.FindMax(); !errors.Is(err, ErrEmptyTree) {
			t.Errorf("FindMax on empty tree: got %v, want ErrEmptyTree", err)
		}
		if _, err := tree.ElementAt(0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("ElementAt(0) on empty tree: got %v, want ErrIndexOutOfRange", err)
		}
		if tree.Height() != -1 {
			t.Errorf("empty tree has height %d", tree.Height())
		}
		for _, b := range randomValues(500, 100000) {
			_ = tree.Insert(b)
			mn, _ := tree.FindMin()
			mx, _ := tree.FindMax()
			first, _ := tree.ElementAt(0)
			last, _ := tree.ElementAt(tree.Count() - 1)
			if first != mn || last != mx {
				t.Fatalf("ElementAt(0), ElementAt(Count-1) = %d, %d; want %d, %d", first, last, mn, mx)
			}
		}
	})
}

func TestTree_RemoveAt(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		for i := range 200 {
			_ = tree.Insert(i * 3)
		}
		if _, err := tree.RemoveAt(200); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemoveAt(200): got %v, want ErrIndexOutOfRange", err)
		}
		want := slices.Collect(tree.Ascend())
		for tree.Count() > 0 {
			k := rg.Intn(int(tree.Count()))
			v, err := tree.RemoveAt(uint32(k))
			if err != nil || v != want[k] {
				t.Fatalf("RemoveAt(%d) = %d, %v; want %d", k, v, err, want[k])
			}
			want = slices.Delete(want, k, k+1)
			if tree.HasItem(v) {
				t.Fatalf("removed value %d still in tree", v)
			}
			mustCheck(t, tree)
		}
	})
}

func TestTree_RoundTrip(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		a := rg.Perm(tAddN)
		for _, v := range a {
			if err := tree.Insert(v); err != nil {
				t.Fatal(err)
			}
		}
		rg.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
		for _, v := range a {
			if err := tree.Delete(v); err != nil {
				t.Fatal(err)
			}
		}
		if tree.Count() != 0 || tree.Height() != -1 {
			t.Errorf("tree not empty: count %d, height %d", tree.Count(), tree.Height())
		}
		for v := range tree.Ascend() {
			t.Errorf("empty tree yields %d", v)
		}
		mustCheck(t, tree)
	})
}

func TestTree_NextLowerHigher(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		if _, ok := tree.NextLower(5); ok {
			t.Errorf("NextLower on empty tree is defined")
		}
		for _, v := range []int{10, 20, 30, 40} {
			_ = tree.Insert(v)
		}
		cases := []struct {
			v            int
			lower, upper int
			hasL, hasU   bool
		}{
			{10, 0, 20, false, true},
			{20, 10, 30, true, true},
			{40, 30, 0, true, false},
			// absent values get the neighbors of their insertion point.
			{25, 20, 30, true, true},
			{5, 0, 10, false, true},
			{45, 40, 0, true, false},
		}
		for _, c := range cases {
			l, okL := tree.NextLower(c.v)
			h, okU := tree.NextHigher(c.v)
			if okL != c.hasL || (okL && l != c.lower) {
				t.Errorf("NextLower(%d) = %d, %v; want %d, %v", c.v, l, okL, c.lower, c.hasL)
			}
			if okU != c.hasU || (okU && h != c.upper) {
				t.Errorf("NextHigher(%d) = %d, %v; want %d, %v", c.v, h, okU, c.upper, c.hasU)
			}
		}
	})
}

func TestTree_Clear(t *testing.T) {
	forEachTree(t, func(t *testing.T, tree Tree[int, uint32]) {
		for i := range 100 {
			_ = tree.Insert(i)
		}
		tree.Clear()
		if tree.Count() != 0 || tree.HasItem(5) {
			t.Errorf("cleared tree isn't empty")
		}
		if err := tree.Insert(5); err != nil {
			t.Errorf("cannot insert into cleared tree: %v", err)
		}
		mustCheck(t, tree)
	})
}
