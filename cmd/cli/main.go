package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	ansi "github.com/gookit/color"
	"github.com/joshdk/preview"
	log "github.com/sirupsen/logrus"

	"github.com/submersibletoaster/hanzilookup"
	"github.com/submersibletoaster/hanzilookup/render"
	"github.com/submersibletoaster/hanzilookup/stroke"
)

var dbFile = flag.String("db", "mmah.db", "Reference database file")
var limit = flag.Int("n", 8, "Number of matches to show")
var asJSON = flag.Bool("json", false, "Print the matches as JSON")
var debugImage = flag.String("debug", "", "Write the analysed strokes and matches to this PNG")
var showPreview = flag.Bool("preview", false, "Show the analysed strokes inline (iTerm2)")
var verbose = flag.Bool("v", false, "Verbose logging")

func main() {
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	var data []byte
	var err error
	switch src := flag.Arg(0); src {
	case "", "-":
		data, err = ioutil.ReadAll(os.Stdin)
	default:
		data, err = ioutil.ReadFile(src)
	}
	if err != nil {
		log.Fatal(err)
	}

	char, err := stroke.ParseJSON(data)
	if err != nil {
		log.Fatal(err)
	}

	rec, err := hanzilookup.FileSource(*dbFile).Recognizer(nil)
	if err != nil {
		log.Fatal(err)
	}
	res, err := rec.Lookup(char, *limit)
	if err != nil {
		log.Fatal(err)
	}

	if *asJSON {
		if err := writeJSON(os.Stdout, res); err != nil {
			log.Fatal(err)
		}
	} else {
		printResults(res)
	}

	if *debugImage != "" || *showPreview {
		img := render.Character(char, res, 2)
		if *debugImage != "" {
			if err := render.Save(*debugImage, img); err != nil {
				log.Errorf("Failed to write debug image: %s", err)
			}
		}
		if *showPreview {
			preview.Image(img)
		}
	}
}

// writeJSON prints res as one JSON array line.
func writeJSON(w io.Writer, res hanzilookup.Results) error {
	out, err := json.Marshal(res)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func printResults(res hanzilookup.Results) {
	if len(res) == 0 {
		fmt.Println("no matches")
		return
	}
	for i, m := range res {
		r, g, b := render.ScoreColor(m.Score).RGB255()
		fmt.Printf("%2d  %s  %s\n", i+1, string(m.Char), ansi.RGB(r, g, b).Sprintf("%.4f", m.Score))
	}
}
