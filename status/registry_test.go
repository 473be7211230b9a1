package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetStable(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	a := m.Get("fps")
	b := m.Get("fps")
	if a != b {
		t.Error("Get must return the same pointer for the same key")
	}

	a.Set(59.5)
	if got := b.Get(); got != 59.5 {
		t.Errorf("Expected 59.5 through aliased pointer, got %f", got)
	}
}

func TestMetricMapConcurrentAccess(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()

	if got := m.Get("shared").Get(); got != 16000 {
		t.Errorf("Expected 16000 after concurrent adds, got %f", got)
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("zeta")
	m.Get("alpha")
	m.Get("mid")

	var keys []string
	m.Range(func(key string, _ *AtomicFloat) {
		keys = append(keys, key)
	})

	want := []string{"alpha", "mid", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("Expected %d keys, got %d", len(want), len(keys))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Key %d: expected %s, got %s", i, want[i], keys[i])
		}
	}
}

func TestRegistryCounts(t *testing.T) {
	r := NewRegistry()
	r.Bools.Get(KeyDegraded)
	r.Ints.Get(KeyTicks)
	r.Ints.Get(KeyAnimsRunning)
	r.Floats.Get(KeyFrameRate)

	if got := r.TotalCount(); got != 4 {
		t.Errorf("Expected 4 registered metrics, got %d", got)
	}
}

func TestAtomicFloatAdd(t *testing.T) {
	var f AtomicFloat
	f.Set(1.5)
	if got := f.Add(2.5); got != 4.0 {
		t.Errorf("Expected Add to return 4.0, got %f", got)
	}
	if got := f.Get(); got != 4.0 {
		t.Errorf("Expected stored 4.0, got %f", got)
	}
}
