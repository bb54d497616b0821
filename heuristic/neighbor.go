// SPDX-License-Identifier: MIT

package heuristic

import "math/rand"

// move names one route perturbation.
type move int

const (
	moveSwap move = iota
	moveInsert
	moveRemove
	moveReverse
)

// pair draws two distinct indices below n (n ≥ 2), ordered i < j.
func pair(r *rand.Rand, n int) (int, int) {
	i := r.Intn(n)
	j := r.Intn(n - 1)
	if j >= i {
		j++
	}
	if i > j {
		i, j = j, i
	}

	return i, j
}

// neighbor returns a perturbed copy of interior over ports 1..n-1, choosing
// uniformly among the moves that apply. ok is false when no move applies.
func neighbor(r *rand.Rand, interior []int, n int) ([]int, bool) {
	inRoute := make([]bool, n)
	for _, p := range interior {
		inRoute[p] = true
	}
	var unvisited []int
	for q := 1; q < n; q++ {
		if !inRoute[q] {
			unvisited = append(unvisited, q)
		}
	}

	moves := make([]move, 0, 4)
	if len(interior) >= 2 {
		moves = append(moves, moveSwap, moveReverse)
	}
	if len(unvisited) > 0 {
		moves = append(moves, moveInsert)
	}
	if len(interior) > 0 {
		moves = append(moves, moveRemove)
	}
	if len(moves) == 0 {
		return nil, false
	}

	out := append(make([]int, 0, len(interior)+1), interior...)
	switch moves[r.Intn(len(moves))] {
	case moveSwap:
		i, j := pair(r, len(out))
		out[i], out[j] = out[j], out[i]
	case moveReverse:
		i, j := pair(r, len(out))
		for ; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	case moveInsert:
		q := unvisited[r.Intn(len(unvisited))]
		pos := r.Intn(len(out) + 1)
		out = append(out, 0)
		copy(out[pos+1:], out[pos:])
		out[pos] = q
	case moveRemove:
		i := r.Intn(len(out))
		out = append(out[:i], out[i+1:]...)
	}

	return out, true
}
