package main

import "io"

// loopReader replays a PCM buffer end to end. With limit 0 it repeats
// forever; otherwise it returns io.EOF after the given number of passes.
type loopReader struct {
	data   []byte
	pos    int
	limit  int
	played int
	done   bool
}

func newLoopReader(data []byte, limit int) *loopReader {
	return &loopReader{data: data, limit: limit}
}

func (r *loopReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 || r.done {
		return 0, io.EOF
	}

	total := 0
	for total < len(p) {
		n := copy(p[total:], r.data[r.pos:])
		r.pos += n
		total += n
		if r.pos == len(r.data) {
			r.played++
			if r.limit > 0 && r.played >= r.limit {
				r.done = true
				return total, nil
			}
			r.pos = 0
		}
	}
	return total, nil
}
