package core

import (
	"custdb/pkg/common"
	"custdb/pkg/core/structure"
)

// Searcher is one leg of the three-way timing comparison. Every leg
// answers the same logical query; only the substrate differs.
type Searcher interface {
	Name() string
	Run() []common.Record
}

type treeLeg struct {
	run func() []common.Record
}

func (treeLeg) Name() string           { return "avl" }
func (l treeLeg) Run() []common.Record { return l.run() }

type stackLeg struct {
	stack *structure.Stack[common.Record]
	pred  func(common.Record) bool
}

func (stackLeg) Name() string { return "stack" }
func (l stackLeg) Run() []common.Record {
	return l.stack.Search(l.pred)
}

type queueLeg struct {
	queue *structure.Queue[common.Record]
	pred  func(common.Record) bool
}

func (queueLeg) Name() string { return "queue" }
func (l queueLeg) Run() []common.Record {
	return l.queue.Search(l.pred)
}
