// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package n50 provides contig length extraction from FASTA files and
// calculation of the N50 assembly statistic.
package n50

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"
	"unicode/utf8"
)

// maxLine is the longest line Lengths will accept. Unwrapped assemblies
// put whole chromosomes on a single line.
const maxLine = 1 << 30

// Lengths returns the lengths of the sequence records read from r, in
// the order they appear. A line starting with '>' begins a new record and
// every other line contributes its whitespace trimmed length to the
// current record. Records with no sequence are not reported. Invalid
// UTF-8 is not rejected; each invalid byte counts as one residue.
func Lengths(r io.Reader) ([]int, error) {
	var (
		lens []int
		curr int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLine)
	sc.Split(scanLines)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) != 0 && line[0] == '>' {
			if curr > 0 {
				lens = append(lens, curr)
			}
			curr = 0
			continue
		}
		curr += utf8.RuneCount(bytes.TrimFunc(line, isSpace))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if curr > 0 {
		lens = append(lens, curr)
	}
	return lens, nil
}

// ReadLengths returns the sequence lengths of the FASTA file at path.
func ReadLengths(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	lens, err := Lengths(f)
	if err != nil {
		return nil, fmt.Errorf("failed during read of %q: %w", path, err)
	}
	return lens, nil
}

// isSpace reports whether r is trimmed from sequence lines. The
// ASCII file, group, record and unit separators count as space.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (0x1c <= r && r <= 0x1f)
}

// scanLines is a bufio.SplitFunc that accepts "\n", "\r\n" and lone "\r"
// as line terminators.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data), atEOF:
			return i + 1, data[:i], nil
		}
		// Need the next byte to tell "\r" from "\r\n".
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// N50 returns the length of the shortest contig among the longest
// contigs that together cover at least half of the total length of
// lens. N50 returns 0 if lens is empty. The lens slice is not modified.
func N50(lens []int) int {
	if len(lens) == 0 {
		return 0
	}
	sorted := make([]int, len(lens))
	copy(sorted, lens)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	var size int
	for _, l := range sorted {
		size += l
	}
	half := float64(size) / 2

	// csum is the cumulative length of the contigs seen so far.
	var csum int
	for _, l := range sorted {
		csum += l
		if float64(csum) >= half {
			return l
		}
	}
	return 0
}

// Stats holds summary statistics of an assembly. All sizes are
// given in base pairs.
type Stats struct {
	Seqs int
	Size int
	Min  int
	Max  int
	Avg  float64
	N50  int
}

// Summarize returns the Stats of the contig lengths in lens.
func Summarize(lens []int) Stats {
	if len(lens) == 0 {
		return Stats{}
	}
	b := Stats{Seqs: len(lens), Min: lens[0], Max: lens[0]}
	for _, l := range lens {
		b.Size += l
		if l < b.Min {
			b.Min = l
		}
		if l > b.Max {
			b.Max = l
		}
	}
	b.Avg = float64(b.Size) / float64(b.Seqs)
	b.N50 = N50(lens)
	return b
}
