// Package perft counts move paths to a fixed depth, the standard test for
// a move generator, and checks the counts against dragontoothmg.
package perft

import (
	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-replica-go/internal/engine"
	"github.com/lgbarn/chess-replica-go/internal/errors"
	"github.com/lgbarn/chess-replica-go/internal/worker"
)

// Entry is the node count below one root move.
type Entry struct {
	Move  string
	Nodes uint64
}

// Mismatch is a root move whose counts differ between the engine and the
// reference generator. A move missing on one side has a zero count there.
type Mismatch struct {
	Move      string
	Engine    uint64
	Reference uint64
}

// Count returns the number of leaf positions depth plies below g.
func Count(g *engine.Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		child.Play(m)
		nodes += Count(child, depth-1)
	}
	return nodes
}

// Divide returns the count below each root move, sorted by move.
func Divide(g *engine.Game, depth int) []Entry {
	return DivideParallel(g, depth, 1)
}

// DivideParallel is Divide with root moves spread over workers.
func DivideParallel(g *engine.Game, depth, workers int) []Entry {
	if depth < 1 {
		return nil
	}

	moves := g.LegalMoves()
	pool := worker.NewPool(func(item worker.WorkItem) worker.Result {
		return worker.Result{Move: item.Move, Index: item.Index, Nodes: Count(item.Game, item.Depth)}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	for i, m := range moves {
		child := g.Clone()
		child.Play(m)
		pool.Submit(worker.WorkItem{Game: child, Move: m, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	entries := make([]Entry, 0, len(moves))
	for r := range pool.Results() {
		entries = append(entries, Entry{Move: r.Move.String(), Nodes: r.Nodes})
	}
	sortEntries(entries)
	return entries
}

// Total sums the counts of a divide.
func Total(entries []Entry) uint64 {
	var n uint64
	for _, e := range entries {
		n += e.Nodes
	}
	return n
}

// Reference counts with dragontoothmg. The FEN is checked by the engine
// first since dragontoothmg does not report malformed input.
func Reference(fen string, depth int) (uint64, error) {
	b, err := referenceBoard(fen)
	if err != nil {
		return 0, err
	}
	return referenceCount(&b, depth), nil
}

// ReferenceDivide is Divide computed with dragontoothmg.
func ReferenceDivide(fen string, depth int) ([]Entry, error) {
	if depth < 1 {
		return nil, nil
	}
	b, err := referenceBoard(fen)
	if err != nil {
		return nil, err
	}

	moves := b.GenerateLegalMoves()
	entries := make([]Entry, 0, len(moves))
	for _, m := range moves {
		unapply := b.Apply(m)
		entries = append(entries, Entry{Move: m.String(), Nodes: referenceCount(&b, depth-1)})
		unapply()
	}
	sortEntries(entries)
	return entries, nil
}

// Compare divides the position with both generators and returns the root
// moves whose counts disagree.
func Compare(fen string, depth int) ([]Mismatch, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, err
	}
	ref, err := ReferenceDivide(fen, depth)
	if err != nil {
		return nil, err
	}
	return diff(Divide(g, depth), ref), nil
}

func diff(got, ref []Entry) []Mismatch {
	counts := make(map[string]*Mismatch, len(ref))
	for _, e := range got {
		counts[e.Move] = &Mismatch{Move: e.Move, Engine: e.Nodes}
	}
	for _, e := range ref {
		if m, ok := counts[e.Move]; ok {
			m.Reference = e.Nodes
		} else {
			counts[e.Move] = &Mismatch{Move: e.Move, Reference: e.Nodes}
		}
	}

	keys := maps.Keys(counts)
	slices.Sort(keys)

	var out []Mismatch
	for _, k := range keys {
		if m := counts[k]; m.Engine != m.Reference {
			out = append(out, *m)
		}
	}
	return out
}

func referenceBoard(fen string) (dragontoothmg.Board, error) {
	if _, err := engine.NewGameFromFEN(fen); err != nil {
		return dragontoothmg.Board{}, errors.Wrap(err, "reference position")
	}
	return dragontoothmg.ParseFen(fen), nil
}

func referenceCount(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referenceCount(b, depth-1)
		unapply()
	}
	return nodes
}

// sortEntries orders entries by move. Root moves are unique, so the
// move string is a complete key.
func sortEntries(entries []Entry) {
	byMove := make(map[string]uint64, len(entries))
	for _, e := range entries {
		byMove[e.Move] = e.Nodes
	}
	keys := maps.Keys(byMove)
	slices.Sort(keys)
	for i, k := range keys {
		entries[i] = Entry{Move: k, Nodes: byMove[k]}
	}
}
