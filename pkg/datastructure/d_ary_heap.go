package datastructure

import (
	"errors"

	"github.com/lintang-b-s/algotrace/pkg"
)

var (
	ErrHeapEmpty      = errors.New("heap is empty")
	ErrInvalidHeapPos = errors.New("invalid index or new value")
)

// PriorityQueueNode. heap entry ordered by (rank, round, seq).
// round is the search round in which the rank was last changed and seq is a caller supplied stable order (row-major
// node index for the grid searches), so ties are broken deterministically.
type PriorityQueueNode[T comparable] struct {
	rank    float64
	round   int
	seq     int
	item    T
	itemPos int
}

func NewPriorityQueueNode[T comparable](rank float64, item T) *PriorityQueueNode[T] {
	return &PriorityQueueNode[T]{rank: rank, item: item, itemPos: -1}
}

func NewPriorityQueueNodeWithOrder[T comparable](rank float64, round, seq int, item T) *PriorityQueueNode[T] {
	return &PriorityQueueNode[T]{rank: rank, round: round, seq: seq, item: item, itemPos: -1}
}

func (p *PriorityQueueNode[T]) GetItem() T {
	return p.item
}

func (p *PriorityQueueNode[T]) GetRank() float64 {
	return p.rank
}

func (p *PriorityQueueNode[T]) SetPos(i int) {
	p.itemPos = i
}

func (p *PriorityQueueNode[T]) GetPos() int {
	return p.itemPos
}

// InHeap. false once the node has been extracted.
func (p *PriorityQueueNode[T]) InHeap() bool {
	return p.itemPos >= 0
}

func (p *PriorityQueueNode[T]) less(o *PriorityQueueNode[T]) bool {
	if p.rank != o.rank {
		return p.rank < o.rank
	}
	if p.round != o.round {
		return p.round < o.round
	}
	return p.seq < o.seq
}

// MinHeap d-ary heap priorityqueue
type MinHeap[T comparable] struct {
	heap []*PriorityQueueNode[T]
	d    int
}

func NewBinaryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](2)
}

func NewFourAryHeap[T comparable]() *MinHeap[T] {
	return NewdAryHeap[T](4)
}

func NewdAryHeap[T comparable](d int) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]*PriorityQueueNode[T], 0),
		d:    d,
	}
}

func (h *MinHeap[T]) Preallocate(maxSearchSize int) {
	h.heap = make([]*PriorityQueueNode[T], 0, maxSearchSize)
}

// parent get index dari parent
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp mempertahankan heap property. swap dengan parent selama node lebih kecil dari parent. O(log_d N).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].less(h.heap[h.parent(index)]) {
		h.Swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown mempertahankan heap property. swap dengan child terkecil selama ada child yang lebih kecil. O(d log_d N).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.heap[i].less(h.heap[smallest]) {
				smallest = i
			}
		}

		if !h.heap[smallest].less(h.heap[index]) {
			return
		}
		h.Swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) Swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]

	h.heap[i].SetPos(i)
	h.heap[j].SetPos(j)
}

// IsEmpty check apakah heap kosong
func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

// Size ukuran heap
func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Clear() {
	for _, node := range h.heap {
		node.SetPos(-1)
	}
	h.heap = h.heap[:0]
}

// GetMin mendapatkan nilai minimum dari min-heap (index 0)
func (h *MinHeap[T]) GetMin() (*PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return nil, ErrHeapEmpty
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) GetMinrank() float64 {
	if h.IsEmpty() {
		return pkg.INF_DISTANCE
	}
	return h.heap[0].rank
}

// Insert item baru
func (h *MinHeap[T]) Insert(key *PriorityQueueNode[T]) {
	h.heap = append(h.heap, key)
	index := h.Size() - 1
	key.SetPos(index)
	h.heapifyUp(index)
}

// ExtractMin ambil nilai minimum dari min-heap (index 0) & pop dari heap. O(d log_d N)
func (h *MinHeap[T]) ExtractMin() (*PriorityQueueNode[T], error) {
	if h.IsEmpty() {
		return nil, ErrHeapEmpty
	}
	root := h.heap[0]

	h.Swap(0, h.Size()-1)

	h.heap[h.Size()-1] = nil
	h.heap = h.heap[:h.Size()-1]
	root.SetPos(-1)
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}

// DecreaseKey update rank dari item min-heap. rank baru tidak boleh lebih besar.
func (h *MinHeap[T]) DecreaseKey(item *PriorityQueueNode[T], rank float64, round int) error {
	itemPos := item.GetPos()
	if itemPos < 0 || itemPos >= h.Size() || h.heap[itemPos] != item || item.GetRank() < rank {
		return ErrInvalidHeapPos
	}

	item.rank = rank
	item.round = round
	h.heapifyUp(itemPos)
	return nil
}

// Update set rank (naik atau turun) lalu perbaiki posisi item.
func (h *MinHeap[T]) Update(item *PriorityQueueNode[T], rank float64, round int) error {
	itemPos := item.GetPos()
	if itemPos < 0 || itemPos >= h.Size() || h.heap[itemPos] != item {
		return ErrInvalidHeapPos
	}

	item.rank = rank
	item.round = round
	h.heapifyUp(itemPos)
	h.heapifyDown(item.GetPos())
	return nil
}
