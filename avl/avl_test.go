package avl_test

import (
	"math"
	"math/rand"
	"testing"

	"calc/avl"

	"github.com/emirpasic/gods/trees/avltree"
)

func TestInsertSequential(t *testing.T) {
	tr := avl.New[int]()
	if !tr.IsEmpty() {
		t.Fatal("new tree is not empty")
	}
	for i := 1; i <= 10; i++ {
		tr.Insert(i)
		if !tr.IsBalanced() {
			t.Fatalf("tree unbalanced after inserting %d", i)
		}
	}
	if tr.Len() != 10 {
		t.Errorf("len = %d, want 10", tr.Len())
	}
	if h := tr.Height(); h > 4 {
		t.Errorf("height = %d, want <= 4", h)
	}
	for i := 1; i <= 10; i++ {
		if !tr.Contains(i) {
			t.Errorf("tree does not contain %d", i)
		}
	}
	if tr.Contains(0) || tr.Contains(11) {
		t.Error("tree contains a value that was never inserted")
	}
}

func TestRemove(t *testing.T) {
	tr := avl.New[int]()
	for i := 1; i <= 10; i++ {
		tr.Insert(i)
	}
	for i := 1; i <= 3; i++ {
		if !tr.Remove(i) {
			t.Errorf("removing %d reported not present", i)
		}
		if !tr.IsBalanced() {
			t.Fatalf("tree unbalanced after removing %d", i)
		}
	}
	if tr.Len() != 7 {
		t.Errorf("len = %d, want 7", tr.Len())
	}
	if tr.Contains(3) {
		t.Error("tree contains removed value 3")
	}
	if !tr.Contains(4) {
		t.Error("tree does not contain 4")
	}
	if tr.Remove(3) {
		t.Error("removing an absent value reported a removal")
	}
	if tr.Len() != 7 {
		t.Errorf("len changed by a no-op remove: %d", tr.Len())
	}
}

func TestDuplicateInsert(t *testing.T) {
	tr := avl.New[int]()
	tr.Insert(5)
	tr.Insert(5)
	tr.Insert(5)
	if tr.Len() != 1 {
		t.Errorf("len = %d after duplicate inserts, want 1", tr.Len())
	}
}

func TestRemoveTwoChildren(t *testing.T) {
	// Force the two-child case at the root: the in-order successor's value
	// is promoted and the successor's node spliced out.
	tr := avl.New[int]()
	for _, v := range []int{8, 4, 12, 2, 6, 10, 14} {
		tr.Insert(v)
	}
	if !tr.Remove(8) {
		t.Fatal("remove(8) reported not present")
	}
	if !tr.IsBalanced() {
		t.Fatal("tree unbalanced after two-child removal")
	}
	if tr.Contains(8) {
		t.Error("tree contains removed root value")
	}
	for _, v := range []int{2, 4, 6, 10, 12, 14} {
		if !tr.Contains(v) {
			t.Errorf("tree lost %d during removal", v)
		}
	}
}

func TestClear(t *testing.T) {
	tr := avl.New[int]()
	for i := 0; i < 100; i++ {
		tr.Insert(i)
	}
	tr.Clear()
	if !tr.IsEmpty() || tr.Len() != 0 || tr.Height() != 0 {
		t.Errorf("cleared tree: len %d height %d", tr.Len(), tr.Height())
	}
	if tr.Contains(50) {
		t.Error("cleared tree contains a value")
	}
	tr.Insert(1)
	if tr.Len() != 1 {
		t.Error("cleared tree does not accept inserts")
	}
}

func TestMinMax(t *testing.T) {
	tr := avl.New[int]()
	if _, ok := tr.Min(); ok {
		t.Error("empty tree has a minimum")
	}
	if _, ok := tr.Max(); ok {
		t.Error("empty tree has a maximum")
	}
	for _, v := range []int{17, 3, 25, 9, 40, 1} {
		tr.Insert(v)
	}
	if v, ok := tr.Min(); !ok || v != 1 {
		t.Errorf("min = %d, %v; want 1", v, ok)
	}
	if v, ok := tr.Max(); !ok || v != 40 {
		t.Errorf("max = %d, %v; want 40", v, ok)
	}
}

func TestInOrder(t *testing.T) {
	tr := avl.New[int]()
	perm := rand.New(rand.NewSource(7)).Perm(100)
	for _, v := range perm {
		tr.Insert(v)
	}
	var got []int
	tr.InOrder(func(v int) bool {
		got = append(got, v)
		return true
	})
	if len(got) != 100 {
		t.Fatalf("in-order visited %d values, want 100", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("in-order[%d] = %d", i, v)
		}
	}
	// Early stop.
	n := 0
	tr.InOrder(func(int) bool {
		n++
		return n < 10
	})
	if n != 10 {
		t.Errorf("early stop visited %d values, want 10", n)
	}
}

func TestHeightBound(t *testing.T) {
	rg := rand.New(rand.NewSource(1))
	tr := avl.New[int]()
	for n, v := range rg.Perm(10000) {
		tr.Insert(v)
		bound := int(math.Ceil(1.44 * math.Log2(float64(n+1)+2)))
		if h := tr.Height(); h > bound {
			t.Fatalf("after %d inserts: height %d exceeds bound %d", n+1, h, bound)
		}
	}
}

func TestRandomOps(t *testing.T) {
	rg := rand.New(rand.NewSource(2))
	tr := avl.New[int]()
	oracle := make(map[int]struct{})
	for i := 0; i < 20000; i++ {
		v := rg.Intn(500)
		if rg.Intn(2) == 0 {
			tr.Insert(v)
			oracle[v] = struct{}{}
		} else {
			_, in := oracle[v]
			if removed := tr.Remove(v); removed != in {
				t.Fatalf("remove(%d) = %v, oracle says %v", v, removed, in)
			}
			delete(oracle, v)
		}
		if !tr.IsBalanced() {
			t.Fatalf("tree unbalanced after operation %d", i)
		}
		if tr.Len() != len(oracle) {
			t.Fatalf("len = %d, oracle has %d", tr.Len(), len(oracle))
		}
	}
	for v := 0; v < 500; v++ {
		_, in := oracle[v]
		if tr.Contains(v) != in {
			t.Errorf("contains(%d) = %v, oracle says %v", v, tr.Contains(v), in)
		}
	}
}

func TestPermutationIndependence(t *testing.T) {
	values := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	rg := rand.New(rand.NewSource(3))
	for trial := 0; trial < 20; trial++ {
		perm := make([]int, len(values))
		copy(perm, values)
		rg.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		tr := avl.New[int]()
		for _, v := range perm {
			tr.Insert(v)
		}
		if !tr.IsBalanced() {
			t.Fatalf("permutation %v gave an unbalanced tree", perm)
		}
		for v := -2; v < 12; v++ {
			want := v >= 0 && v <= 9
			if tr.Contains(v) != want {
				t.Fatalf("permutation %v: contains(%d) = %v, want %v", perm, v, tr.Contains(v), want)
			}
		}
	}
}

// TestOracleAVL cross-checks membership and the in-order sequence against
// the gods AVL tree under a random workload.
func TestOracleAVL(t *testing.T) {
	rg := rand.New(rand.NewSource(4))
	tr := avl.New[int]()
	oracle := avltree.NewWithIntComparator()
	for i := 0; i < 10000; i++ {
		v := rg.Intn(1000)
		if rg.Intn(3) != 0 {
			tr.Insert(v)
			oracle.Put(v, nil)
		} else {
			tr.Remove(v)
			oracle.Remove(v)
		}
	}
	if tr.Len() != oracle.Size() {
		t.Fatalf("len = %d, oracle size = %d", tr.Len(), oracle.Size())
	}
	var got []int
	tr.InOrder(func(v int) bool {
		got = append(got, v)
		return true
	})
	keys := oracle.Keys()
	if len(got) != len(keys) {
		t.Fatalf("in-order yields %d values, oracle has %d keys", len(got), len(keys))
	}
	for i, k := range keys {
		if got[i] != k.(int) {
			t.Fatalf("in-order[%d] = %d, oracle key is %v", i, got[i], k)
		}
	}
	for v := 0; v < 1000; v++ {
		_, in := oracle.Get(v)
		if tr.Contains(v) != in {
			t.Errorf("contains(%d) = %v, oracle says %v", v, tr.Contains(v), in)
		}
	}
}

func TestStrings(t *testing.T) {
	tr := avl.New[string]()
	for _, s := range []string{"pear", "apple", "quince", "fig", "banana"} {
		tr.Insert(s)
	}
	if !tr.Contains("fig") || tr.Contains("grape") {
		t.Error("string membership wrong")
	}
	if v, ok := tr.Min(); !ok || v != "apple" {
		t.Errorf("min = %q", v)
	}
	if !tr.Remove("pear") || tr.Contains("pear") {
		t.Error("string removal wrong")
	}
	if !tr.IsBalanced() {
		t.Error("string tree unbalanced")
	}
}
