package leveldata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseText reads the text level format: a header line of three digits
// (weather, music track, tileset) followed by one line per tile row where
// each character c encodes the tile code c-'a'. Rows shorter than the first
// are padded with empty tiles and longer rows are truncated.
func ParseText(r io.Reader, name string) (*Level, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, &LevelLoadError{Path: name, Reason: "read", Err: err}
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) < 2 {
		return nil, &LevelLoadError{Path: name, Reason: "empty", Err: ErrEmptyLevel}
	}

	header := lines[0]
	if len(header) < 3 {
		return nil, &LevelLoadError{Path: name, Reason: fmt.Sprintf("header %q needs three digits", header)}
	}
	var digits [3]int
	for i := range digits {
		c := header[i]
		if c < '0' || c > '9' {
			return nil, &LevelLoadError{Path: name, Reason: fmt.Sprintf("header %q needs three digits", header)}
		}
		digits[i] = int(c - '0')
	}

	rows := lines[1:]
	width := len(rows[0])
	if width == 0 {
		return nil, &LevelLoadError{Path: name, Reason: "empty", Err: ErrEmptyLevel}
	}

	lvl := &Level{
		Name:    name,
		Weather: digits[0] == 1,
		Track:   digits[1],
		Tileset: digits[2],
		Codes:   make([][]int, len(rows)),
	}
	for y, line := range rows {
		row := make([]int, width)
		for x := 0; x < width && x < len(line); x++ {
			if code := int(line[x]) - 'a'; code > 0 {
				row[x] = code
			}
		}
		lvl.Codes[y] = row
	}
	return lvl, nil
}

// FormatText renders a level back into the text format.
func FormatText(l *Level) string {
	var b strings.Builder
	weather := 0
	if l.Weather {
		weather = 1
	}
	fmt.Fprintf(&b, "%d%d%d\n", weather, l.Track, l.Tileset)
	for _, row := range l.Codes {
		for _, code := range row {
			b.WriteByte(byte('a' + code))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
