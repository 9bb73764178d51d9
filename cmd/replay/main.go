package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	pb "github.com/cheggaaa/pb/v3"
	ansi "github.com/gookit/color"
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/hanzilookup"
	"github.com/submersibletoaster/hanzilookup/render"
	"github.com/submersibletoaster/hanzilookup/stroke"
)

var dbFile = flag.String("db", "mmah.db", "Reference database file")
var limit = flag.Int("n", 8, "Number of matches per sample")
var workers = flag.Uint("w", 4, "Number of worker routines")
var incremental = flag.Bool("incremental", false, "Also look up every stroke prefix, as while drawing")
var quiet = flag.Bool("q", false, "Only print the summary")
var verbose = flag.Bool("v", false, "Verbose logging")

// Sample - one lookup to perform. Nth orders the output.
type Sample struct {
	Nth  uint
	Line int
	Char stroke.Character
}

// Outcome - result of one Sample
type Outcome struct {
	Sample
	Results hanzilookup.Results
	Err     error
	Took    time.Duration
}

// OutBuff - Sortable collection of Outcome
// output is streamed in input order
type OutBuff []Outcome

func (r OutBuff) Len() int {
	return len(r)
}
func (r OutBuff) Less(i, j int) bool {
	return r[i].Nth < r[j].Nth
}
func (r OutBuff) Swap(i, j int) {
	r[i], r[j] = r[j], r[i]
}

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *workers == 0 {
		*workers = 1
	}

	src, err := os.Open(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	samples, err := readSamples(src, *incremental)
	src.Close()
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("%d samples from %s", len(samples), flag.Arg(0))

	rec, err := hanzilookup.FileSource(*dbFile).Recognizer(nil)
	if err != nil {
		log.Fatal(err)
	}

	in := make(chan Sample, *workers)
	go func() {
		for _, s := range samples {
			in <- s
		}
		close(in)
	}()

	bar := pb.New(len(samples)).SetWriter(os.Stderr).Start()
	var total time.Duration
	failed := 0
	Workers(*workers, rec, in, func(o Outcome) {
		bar.Increment()
		total += o.Took
		if o.Err != nil {
			failed++
			log.Warnf("line %d: %s", o.Line, o.Err)
			return
		}
		if !*quiet {
			printOutcome(os.Stdout, o)
		}
	})
	bar.Finish()

	if len(samples) > 0 {
		log.Infof("%d lookups, %d failed, %s per lookup", len(samples), failed, total/time.Duration(len(samples)))
	}
}

// readSamples reads one character per line, as JSON strokes. Blank lines are
// skipped. With prefixes every stroke prefix becomes a sample of its own.
func readSamples(r io.Reader, prefixes bool) ([]Sample, error) {
	var out []Sample
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 64*1024), 4*1024*1024)
	line := 0
	for scan.Scan() {
		line++
		text := scan.Bytes()
		if len(text) == 0 {
			continue
		}
		char, err := stroke.ParseJSON(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		first := len(char)
		if prefixes {
			first = 1
		}
		for n := first; n <= len(char); n++ {
			out = append(out, Sample{Nth: uint(len(out)), Line: line, Char: char.Prefix(n)})
		}
	}
	return out, scan.Err()
}

// Workers runs lookups on n goroutines sharing rec and hands the outcomes to
// emit in sample order.
func Workers(n uint, rec *hanzilookup.Recognizer, samples <-chan Sample, emit func(Outcome)) {
	mid := make(chan Outcome, n)
	wait := sync.WaitGroup{}
	for i := uint(0); i < n; i++ {
		wait.Add(1)
		go func() {
			defer wait.Done()
			for s := range samples {
				start := time.Now()
				res, err := rec.Lookup(s.Char, *limit)
				mid <- Outcome{Sample: s, Results: res, Err: err, Took: time.Since(start)}
			}
		}()
	}
	go func() {
		wait.Wait()
		close(mid)
	}()

	nextOut := uint(0)
	buffer := make(OutBuff, 0)
	for o := range mid {
		buffer = append(buffer, o)
		sort.Sort(buffer)
		for len(buffer) != 0 && buffer[0].Nth == nextOut {
			emit(buffer[0])
			nextOut++
			buffer = buffer[1:]
		}
	}
}

func printOutcome(w io.Writer, o Outcome) {
	fmt.Fprintf(w, "%5d %2d ", o.Line, len(o.Char))
	for _, m := range o.Results {
		r, g, b := render.ScoreColor(m.Score).RGB255()
		fmt.Fprint(w, ansi.RGB(r, g, b).Sprint(string(m.Char)))
	}
	fmt.Fprintln(w)
}
