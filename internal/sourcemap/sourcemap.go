// Package sourcemap emits version-3 source maps establishing line-level
// identity between a module's source and its compiled output. Column-accurate
// mapping is out of scope: each mapped output line carries exactly one
// segment pointing at column 0 of the corresponding source line.
package sourcemap

import (
	"strings"
)

// Map is a version-3 source map with a single source.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent"`
	Mappings       string   `json:"mappings"`
}

// Generate builds the line-identity map for one compile. Output lines beyond
// the source's line count get empty segments; the segment count invariant is
// strings.Count(Mappings, ";") == output line count - 1.
func Generate(filename, src, output string) *Map {
	inLines := lineCount(src)
	outLines := lineCount(output)
	linesToMap := min(inLines, outLines)

	segments := make([]string, 0, outLines)
	prevSourceLine := 0
	for i := 0; i < outLines; i++ {
		if i >= linesToMap {
			segments = append(segments, "")
			continue
		}
		// One 4-field group: output column 0, source index 0,
		// source line delta, source column 0.
		seg := encodeVLQ(0) + encodeVLQ(0) + encodeVLQ(i-prevSourceLine) + encodeVLQ(0)
		prevSourceLine = i
		segments = append(segments, seg)
	}

	return &Map{
		Version:        3,
		File:           OutputName(filename),
		Sources:        []string{filename},
		SourcesContent: []string{src},
		Mappings:       strings.Join(segments, ";"),
	}
}

// OutputName normalizes the source-only suffix to the emitted one:
// app.jsx -> app.js. Other names pass through unchanged.
func OutputName(filename string) string {
	if rest, ok := strings.CutSuffix(filename, ".jsx"); ok {
		return rest + ".js"
	}
	return filename
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}
