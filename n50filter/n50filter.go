// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// n50filter calculates the N50 of every FASTA assembly (.fna) in a
// directory and copies the assemblies with an N50 of at least 20 kb
// into the N50 subdirectory. The N50 of every assembly is logged to
// N50/N50_log.txt as tab separated values.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/vinyheenryy94/N50-ANALYSER/n50"
)

const (
	defaultMinN50 = 20000

	destDir = "N50"
	logName = "N50_log.txt"
	ext     = ".fna"
)

var help = flag.Bool("help", false, "help prints this message.")

var errNoDir = errors.New("missing path to the assembly directory")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-help] [--] <assembly directory>\n", filepath.Base(os.Args[0]))
		fmt.Fprintln(os.Stderr, "A directory name starting with '-' must follow --.")
		flag.PrintDefaults()
	}
	src, err := sourceDir(flag.CommandLine, os.Args[1:])
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	err = filter(src, filepath.Join(src, destDir), defaultMinN50, os.Stdout)
	if err != nil {
		log.Fatalf("failed to filter %q: %v", src, err)
	}
}

// sourceDir parses args with fs and returns the assembly directory,
// the first positional argument.
func sourceDir(fs *flag.FlagSet, args []string) (string, error) {
	err := fs.Parse(args)
	if err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		return "", errNoDir
	}
	return fs.Arg(0), nil
}

// filter logs the N50 of each assembly in src to dst and copies the
// assemblies with N50 >= min into dst. Assemblies without contigs are
// never copied. Copied files are reported to out.
func filter(src, dst string, min int, out io.Writer) error {
	err := os.MkdirAll(dst, 0o755)
	if err != nil {
		return err
	}

	lf, err := os.Create(filepath.Join(dst, logName))
	if err != nil {
		return err
	}
	defer lf.Close()
	_, err = fmt.Fprintf(lf, "Arquivo\tN50\n")
	if err != nil {
		return err
	}

	ents, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range ents {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		path := filepath.Join(src, name)
		lens, err := n50.ReadLengths(path)
		if err != nil {
			return err
		}
		n := n50.N50(lens)

		_, err = fmt.Fprintf(lf, "%s\t%d\n", name, n)
		if err != nil {
			return fmt.Errorf("failed to write log entry for %q: %w", name, err)
		}

		// An N50 of zero means the file holds no contigs.
		if n > 0 && n >= min {
			err = copyFile(filepath.Join(dst, name), path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "copied %s (N50 = %d)\n", name, n)
		}
	}
	return lf.Close()
}

// copyFile copies the contents and permission bits of src to dst,
// replacing dst if it exists.
func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	fi, err := in.Stat()
	if err != nil {
		return err
	}

	o, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, err = io.Copy(o, in)
	if err != nil {
		o.Close()
		return fmt.Errorf("failed to copy %q: %w", src, err)
	}
	err = o.Close()
	if err != nil {
		return err
	}
	return os.Chmod(dst, fi.Mode().Perm())
}
