package xslot

import (
	"sync"
	"testing"
)

func TestStore(t *testing.T) {
	s := NewStore[int]()
	owner := For[widget]()

	t.Run("load absent", func(t *testing.T) {
		v, ok := s.Load(owner)
		if ok || v != 0 {
			t.Errorf("absent slot: got (%d, %v), want (0, false)", v, ok)
		}
	})

	t.Run("store and load", func(t *testing.T) {
		s.Store(owner, 42)
		v, ok := s.Load(owner)
		if !ok || v != 42 {
			t.Errorf("got (%d, %v), want (42, true)", v, ok)
		}
		if s.Len() != 1 {
			t.Errorf("Len: got %d, want 1", s.Len())
		}
	})

	t.Run("overwrite", func(t *testing.T) {
		s.Store(owner, 7)
		v, _ := s.Load(owner)
		if v != 7 {
			t.Errorf("overwrite: got %d, want 7", v)
		}
		if s.Len() != 1 {
			t.Errorf("Len after overwrite: got %d, want 1", s.Len())
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		s.Delete(owner)
		if _, ok := s.Load(owner); ok {
			t.Error("slot should be absent after delete")
		}
		s.Delete(owner) // 第二次删除不应有任何影响
		if s.Len() != 0 {
			t.Errorf("Len after double delete: got %d, want 0", s.Len())
		}
	})

	t.Run("distinct owners", func(t *testing.T) {
		s.Store(For[widget](), 1)
		s.Store(For[gadget](), 2)
		if s.Len() != 2 {
			t.Errorf("Len: got %d, want 2", s.Len())
		}
		v, _ := s.Load(For[gadget]())
		if v != 2 {
			t.Errorf("gadget slot: got %d, want 2", v)
		}
	})
}

func TestSyncStore(t *testing.T) {
	t.Run("zero value is usable", func(t *testing.T) {
		var s SyncStore[string]
		if _, ok := s.Load(For[widget]()); ok {
			t.Error("zero-value store should be empty")
		}
		s.Store(For[widget](), "hello")
		v, ok := s.Load(For[widget]())
		if !ok || v != "hello" {
			t.Errorf("got (%q, %v), want (hello, true)", v, ok)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		var s SyncStore[int]
		s.Store(For[widget](), 1)
		s.Delete(For[widget]())
		s.Delete(For[widget]())
		if s.Len() != 0 {
			t.Errorf("Len: got %d, want 0", s.Len())
		}
	})

	t.Run("concurrent store and load", func(t *testing.T) {
		var s SyncStore[int]
		owner := For[widget]()
		s.Store(owner, 99)

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					if v, ok := s.Load(owner); ok && v != 99 {
						t.Errorf("unexpected value: %d", v)
						return
					}
				}
			}()
		}
		wg.Wait()
	})
}
