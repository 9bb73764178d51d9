package main

import (
	"flag"
	"fmt"

	pb "github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/hanzilookup"
	"github.com/submersibletoaster/hanzilookup/glyph"
	"github.com/submersibletoaster/hanzilookup/match"
)

var dbFile = flag.String("db", "mmah.db", "Reference database file")
var top = flag.Int("n", 3, "Matches to show for references that do not find themselves first")
var verbose = flag.Bool("v", false, "Verbose logging")

// Feeds every reference's own features back through the matcher and reports
// the ones that do not come out on top.
func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	db, err := hanzilookup.FileSource(*dbFile).Database()
	if err != nil {
		log.Fatal(err)
	}
	m, err := match.New(nil)
	if err != nil {
		log.Fatal(err)
	}

	perfect := 0
	edge := 0
	bar := pb.StartNew(db.Len())
	var report []string
	for i := 0; i < db.Len(); i++ {
		ref := db.At(i)
		c := match.NewCollector(*top)
		m.Run(ref.Features, ref.StrokeCount, db, c)
		bar.Increment()

		r := c.Results()
		if len(r) > 0 && r[0].Char == ref.Char {
			perfect++
			continue
		}
		edge++
		report = append(report, describe(db, ref, r))
	}
	bar.Finish()

	for _, line := range report {
		fmt.Println(line)
	}
	log.Infof("Perfect 1st match %d , edge cases %d", perfect, edge)
}

// describe lists what outranked ref, with the Hamming distance between the
// coarse signatures as a hint of how alike the two drawings are.
func describe(db *glyph.Database, ref glyph.Reference, res match.Results) string {
	sig := glyph.MakeSignature(ref.Features)
	line := fmt.Sprintf("'%s'\t%U\t", string(ref.Char), ref.Char)
	for _, v := range res {
		other, ok := find(db, v.Char)
		d := -1
		if ok {
			d, _ = sig.Distance(glyph.MakeSignature(other.Features))
		}
		line += fmt.Sprintf("%.5f,'%s',h%d\t", v.Score, string(v.Char), d)
	}
	return line
}

func find(db *glyph.Database, r rune) (glyph.Reference, bool) {
	for i := 0; i < db.Len(); i++ {
		if ref := db.At(i); ref.Char == r {
			return ref, true
		}
	}
	return glyph.Reference{}, false
}
