package engine

import (
	"fmt"
	"io"
	"strings"

	. "github.com/gridchess/gridchess/pkg/common"
)

// Tracer observes the search tree. It must not change anything the search reads.
// Enter and Exit are paired; height is the height of the node making the move,
// and score is from that node's side.
type Tracer interface {
	BeginIteration(depth int)
	Enter(height int, move Move)
	Exit(height int, score int)
	EndIteration(score int, completed bool)
}

type TreeNode struct {
	Move     Move
	Score    int
	Children []*TreeNode
	parent   *TreeNode
}

// DecisionTree records the tree of the last completed iteration.
// Nodes deeper than MaxHeight are not recorded; zero records everything.
type DecisionTree struct {
	MaxHeight int
	root      *TreeNode
	current   *TreeNode
	depth     int
	last      *TreeNode
	lastDepth int
}

func (t *DecisionTree) BeginIteration(depth int) {
	t.root = &TreeNode{}
	t.current = t.root
	t.depth = depth
}

func (t *DecisionTree) Enter(height int, move Move) {
	if t.skip(height) {
		return
	}
	var node = &TreeNode{Move: move, parent: t.current}
	t.current.Children = append(t.current.Children, node)
	t.current = node
}

func (t *DecisionTree) Exit(height int, score int) {
	if t.skip(height) {
		return
	}
	t.current.Score = score
	t.current = t.current.parent
}

func (t *DecisionTree) EndIteration(score int, completed bool) {
	if completed {
		t.root.Score = score
		t.last = t.root
		t.lastDepth = t.depth
	}
	t.root = nil
	t.current = nil
}

func (t *DecisionTree) skip(height int) bool {
	return t.current == nil || t.MaxHeight > 0 && height >= t.MaxHeight
}

// Root returns the root of the last completed iteration, or nil.
func (t *DecisionTree) Root() *TreeNode {
	return t.last
}

func (t *DecisionTree) Depth() int {
	return t.lastDepth
}

func (t *DecisionTree) Print(w io.Writer) {
	if t.last == nil {
		return
	}
	fmt.Fprintln(w, "depth", t.lastDepth, "score", t.last.Score)
	for _, child := range t.last.Children {
		printNode(w, child, 1)
	}
}

func printNode(w io.Writer, node *TreeNode, level int) {
	fmt.Fprintf(w, "%s%v %d\n", strings.Repeat("  ", level), node.Move, node.Score)
	for _, child := range node.Children {
		printNode(w, child, level+1)
	}
}
