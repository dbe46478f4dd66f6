// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// seqstats calculates and prints sequence statistics from
// a multi-FASTA DNA sequence file (default stdin). It
// is useful for checking an assembly before filtering it
// with n50filter. It prints: the total no. of sequences,
// assembly size (total length of all sequences), Min, Max,
// Avg and N50.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/vinyheenryy94/N50-ANALYSER/n50"
)

// binStats holds the basename of the file without any
// extension and the statistics of its sequences.
type binStats struct {
	Name string // From input filename (empty, if stdin).
	n50.Stats
}

var (
	ctgf = flag.String("in", "", "input contig file, defaults to stdin")
	help = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	var r io.Reader
	if *ctgf == "" {
		r = os.Stdin
	} else {
		in, err := os.Open(*ctgf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *ctgf, err)
		}
		defer in.Close()
		r = in
	}

	b, err := stats(*ctgf, r)
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	// Print the statistics of the assembly as key-value pairs.
	fmt.Printf("%+v\n", b)
}

// stats returns the statistics of the FASTA sequences read from r.
// Records with no sequence count towards the number of sequences.
func stats(name string, r io.Reader) (binStats, error) {
	var lens []int
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA)))
	for sc.Next() {
		lens = append(lens, sc.Seq().Len())
	}
	err := sc.Error()
	if err != nil {
		return binStats{}, err
	}

	var b binStats
	if name != "" {
		b.Name = strings.Split(filepath.Base(name), ".")[0]
	}
	b.Stats = n50.Summarize(lens)
	return b, nil
}
