// Package rle reads and writes run-length encoded Life patterns. The
// format stores runs of alive cells ('o'), dead cells ('b') and row breaks
// ('$'), terminated by '!'; '#' starts a comment.
package rle

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"sparselife/pkg/pos"
)

const maxLineLen = 70

// runWriter appends run-length tokens to a sequence, wrapping lines once
// they would exceed maxLineLen.
type runWriter struct {
	sb      strings.Builder
	lineLen int
}

// pushRun appends a run of length run tagged with c. Runs of zero are
// omitted entirely, runs of one drop the count.
func (w *runWriter) pushRun(run int, c byte) {
	var token string
	switch run {
	case 0:
		return
	case 1:
		token = string(c)
	default:
		token = strconv.Itoa(run) + string(c)
	}
	if w.lineLen+len(token) > maxLineLen {
		w.sb.WriteByte('\n')
		w.lineLen = 0
	}
	w.lineLen += len(token)
	w.sb.WriteString(token)
}

func (w *runWriter) end() string {
	w.sb.WriteByte('!')
	return w.sb.String()
}

// Encode serializes a sorted, duplicate-free cell slice. A non-empty name
// is written as a "#N" comment ahead of the header line.
func Encode(name string, cells []pos.Pos) string {
	var sb strings.Builder
	if name != "" {
		fmt.Fprintf(&sb, "#N %s\n", name)
	}
	sb.WriteString("x = 0, y = 0, rule = 23/3\n")
	sb.WriteString(encodeCells(cells))
	sb.WriteByte('\n')
	return sb.String()
}

func encodeCells(cells []pos.Pos) string {
	var tl pos.Pos
	if len(cells) > 0 {
		// sorted input, so the first cell carries the lowest y
		tl = pos.Pos{X: cells[0].X, Y: cells[0].Y}
		for _, p := range cells {
			if p.X < tl.X {
				tl.X = p.X
			}
		}
	}

	last := tl.Sub(pos.Pos{X: 1})
	aliveRun := 0
	var w runWriter
	for _, p := range cells {
		// extend the current run while cells stay adjacent on one row
		if last.Y == p.Y && last.X+1 == p.X {
			aliveRun++
			last = p
			continue
		}

		linesRun := p.Y - last.Y
		deadRun := p.X - tl.X
		if linesRun == 0 {
			deadRun = p.X - last.X - 1
		}
		// order matters: close the alive run, then rows, then padding
		w.pushRun(aliveRun, 'o')
		w.pushRun(linesRun, '$')
		w.pushRun(deadRun, 'b')

		aliveRun = 1
		last = p
	}
	w.pushRun(aliveRun, 'o')
	return w.end()
}

var tokenRe = regexp.MustCompile(`(\d*)([bo$!])`)

// Decode parses an encoded pattern into a sorted, duplicate-free cell
// slice anchored at the origin. Unrecognized text is skipped, parsing
// stops at the first '!'.
func Decode(value string) []pos.Pos {
	var (
		alive  []pos.Pos
		cursor pos.Pos
	)
	for _, line := range strings.Split(value, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, m := range tokenRe.FindAllStringSubmatch(line, -1) {
			run, err := strconv.Atoi(m[1])
			if err != nil {
				run = 1
			}
			switch m[2] {
			case "!":
				return alive
			case "o":
				for ; run > 0; run-- {
					alive = append(alive, cursor)
					cursor.X++
				}
			case "b":
				cursor.X += run
			case "$":
				cursor.X = 0
				cursor.Y += run
			}
		}
	}
	return alive
}

// ReadFile decodes the pattern stored at path.
func ReadFile(path string) ([]pos.Pos, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read pattern file %s", path)
	}
	return Decode(string(data)), nil
}

// WriteFile encodes cells and writes them to path.
func WriteFile(path, name string, cells []pos.Pos) error {
	if err := os.WriteFile(path, []byte(Encode(name, cells)), 0o644); err != nil {
		return errors.Wrapf(err, "write pattern file %s", path)
	}
	return nil
}
