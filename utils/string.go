package utils

import "strings"

// Remove returns a copy of list without any element that equals one of strs,
// ignoring case.
func Remove(list []string, strs ...string) []string {
	out := append([]string(nil), list...)
	for _, str := range strs {
		var n int
		for _, v := range out {
			if !strings.EqualFold(v, str) {
				out[n] = v
				n++
			}
		}
		out = out[:n]
	}
	return out
}

// ContainsFold reports whether list holds s, ignoring case.
func ContainsFold(list []string, s string) bool {
	return IndexFold(list, s) >= 0
}

// IndexFold returns the index of the first element equal to s ignoring case,
// or -1.
func IndexFold(list []string, s string) int {
	for i, v := range list {
		if strings.EqualFold(v, s) {
			return i
		}
	}
	return -1
}
