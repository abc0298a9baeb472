package util

import (
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// GetKeysSorted is GetKeys in ascending order, for deterministic iteration.
func GetKeysSorted[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	slices.Sort(keys)
	return keys
}

func Min[A constraints.Ordered](nums ...A) A {
	res := nums[0]
	for _, v := range nums[1:] {
		if v < res {
			res = v
		}
	}
	return res
}

func Max[A constraints.Ordered](nums ...A) A {
	res := nums[0]
	for _, v := range nums[1:] {
		if v > res {
			res = v
		}
	}
	return res
}

func Sum[A constraints.Integer | constraints.Float](nums []A) A {
	var total A
	for _, v := range nums {
		total += v
	}
	return total
}

func Map[A any, B any](in []A, f func(A) B) []B {
	res := make([]B, len(in))
	for i, v := range in {
		res[i] = f(v)
	}
	return res
}

func EnsureDir(dir string) error {
	return os.MkdirAll(filepath.Clean(dir), 0o755)
}
