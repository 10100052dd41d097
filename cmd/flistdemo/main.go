// Command flistdemo walks the forwardlist public surface: it builds lists
// from slices and a slice range, inserts, sorts, deduplicates, merges, links
// and erases, logging the list state after each step.
package main

import (
	"go.uber.org/zap"

	"github.com/containerkit/forwardlist"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	mutations := forwardlist.Trace{
		OnInsert: func(n, size int) {
			logger.Debug("insert", zap.Int("n", n), zap.Int("len", size))
		},
		OnErase: func(n, size int) {
			logger.Debug("erase", zap.Int("n", n), zap.Int("len", size))
		},
		OnSort: func(order forwardlist.Order, size int) {
			logger.Debug("sort", zap.Stringer("order", order), zap.Int("len", size))
		},
		OnMerge: func(n, size int) {
			logger.Debug("merge", zap.Int("n", n), zap.Int("len", size))
		},
		OnLink: func(n, size int) {
			logger.Debug("link", zap.Int("n", n), zap.Int("len", size))
		},
	}

	list1 := forwardlist.New(forwardlist.WithTrace[int](mutations))
	list2 := forwardlist.FromSlice([]int{10, 20, 24})
	list3, err := forwardlist.FromRange([]int{1, 2, 3, 3, 3, 4, 7, 7, 10}, 0, 8)
	if err != nil {
		logger.Fatal("building list3", zap.Error(err))
	}

	list1.PushFront(9)
	list1.PushBack(-12)
	list1.PushBack(7)
	list1.InsertAfter(list1.CBegin().Next(), 1024)
	report(logger, "list1", list1)
	report(logger, "list2", list2)
	report(logger, "list3", list3)

	logger.Info("before sort", zap.Bool("sorted", list1.Sorted(forwardlist.Ascending)))
	list1.Sort(forwardlist.Ascending)
	report(logger, "list1", list1)
	logger.Info("after sort", zap.Bool("sorted", list1.Sorted(forwardlist.Ascending)))

	list3.Unique()
	report(logger, "list3", list3)

	list1.Merge(list3, forwardlist.Ascending)
	report(logger, "list1", list1)

	list1.InsertAfter(list1.CBeforeBegin(), list2.Back().Value())
	list1.InsertAfterN(list1.CBegin().Advance(4), 9, 5)
	report(logger, "list1", list1)
	logger.Info("count", zap.Int("nines", list1.Count(9)))

	list1.Assign(list1.Find(1024), 2048)
	report(logger, "list1", list1)

	list1.Link(list2)
	report(logger, "list1", list1)

	list1.EraseRange(list1.CBegin().Advance(4), list1.CBegin().Advance(8))
	report(logger, "list1", list1)

	list1.Clear()
	report(logger, "list1", list1)
}

func report(logger *zap.Logger, name string, l *forwardlist.List[int]) {
	logger.Info(name, zap.Int("len", l.Len()), zap.Stringer("elems", l))
}
