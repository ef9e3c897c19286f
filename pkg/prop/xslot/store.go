package xslot

import (
	"reflect"
	"sync"
)

// Store 是非并发安全的槽位注册表。
// 必须通过 [NewStore] 创建。调用方负责外部同步；
// 单 goroutine 场景下无任何锁开销。
type Store[V any] struct {
	slots map[reflect.Type]V
}

// NewStore 创建空的槽位注册表。
func NewStore[V any]() *Store[V] {
	return &Store[V]{slots: make(map[reflect.Type]V)}
}

// Load 返回属主的槽位值。槽位缺席时返回零值和 false。
func (s *Store[V]) Load(owner reflect.Type) (value V, ok bool) {
	value, ok = s.slots[owner]
	return value, ok
}

// Store 写入属主的槽位值，已存在时直接覆盖。
func (s *Store[V]) Store(owner reflect.Type, value V) {
	s.slots[owner] = value
}

// Delete 移除属主的槽位。槽位缺席时为幂等空操作。
func (s *Store[V]) Delete(owner reflect.Type) {
	delete(s.slots, owner)
}

// Len 返回当前持有槽位的属主数量。
func (s *Store[V]) Len() int {
	return len(s.slots)
}

// SyncStore 是并发安全的槽位注册表，零值可用。
//
// Load 基于 sync.Map，无锁；Store/Delete 的写入对后续 Load
// 具备 happens-before 语义，计算结果一经发布即对所有 goroutine 可见。
// 适合作为双重检查模式的快路径。
type SyncStore[V any] struct {
	m sync.Map // reflect.Type → V
}

// Load 返回属主的槽位值。槽位缺席时返回零值和 false。
func (s *SyncStore[V]) Load(owner reflect.Type) (value V, ok bool) {
	v, ok := s.m.Load(owner)
	if !ok {
		return value, false
	}
	return v.(V), true
}

// Store 写入属主的槽位值，已存在时直接覆盖。
func (s *SyncStore[V]) Store(owner reflect.Type, value V) {
	s.m.Store(owner, value)
}

// Delete 移除属主的槽位。槽位缺席时为幂等空操作。
func (s *SyncStore[V]) Delete(owner reflect.Type) {
	s.m.Delete(owner)
}

// Len 返回当前持有槽位的属主数量。复杂度 O(n)。
func (s *SyncStore[V]) Len() int {
	n := 0
	s.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
