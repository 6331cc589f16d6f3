package linechart

import (
	"strconv"
	"strings"
)

// Dasharray produces a stroke-dash specification that draws exactly the
// first drawnLength of a path of totalLength and hides the remainder. The
// partial-length trick drives the draw-on animation: advancing drawnLength
// frame by frame traces the stroke in.
//
// With an empty (or all-zero) pattern the result is a simple draw-then-erase
// pair. Otherwise pattern repeats as alternating draw/gap lengths (padded
// with a trailing zero when odd) until drawnLength is covered, the segment
// straddling the boundary is shortened to fit, and a final gap hides the
// rest of the path.
func Dasharray(drawnLength, totalLength float64, pattern []float64) string {
	var sum float64
	for _, p := range pattern {
		sum += p
	}
	if len(pattern) == 0 || sum <= 0 {
		return px(drawnLength) + " " + px(totalLength-drawnLength)
	}

	pat := append([]float64(nil), pattern...)
	if len(pat)%2 != 0 {
		pat = append(pat, 0)
	}

	count := int(drawnLength / sum)
	remain := drawnLength - float64(count)*sum
	segments := make([]float64, 0, (count+1)*len(pat)+2)
	for i := 0; i < count; i++ {
		segments = append(segments, pat...)
	}
	var covered float64
	for _, p := range pat {
		if covered+p >= remain {
			segments = append(segments, remain-covered)
			break
		}
		covered += p
		segments = append(segments, p)
	}
	// Even-indexed segments draw, odd ones skip. The closing segment must
	// land on a skip slot so the tail of the path stays hidden.
	if len(segments)%2 == 0 {
		segments = append(segments, 0)
	}
	segments = append(segments, totalLength-drawnLength)

	tokens := make([]string, len(segments))
	for i, s := range segments {
		tokens[i] = px(s)
	}
	return strings.Join(tokens, ",")
}

// DashSegments parses a stroke-dash specification back into lengths. Both
// comma- and space-separated "px" tokens are accepted. Malformed tokens
// yield nil, which renderers treat as a solid stroke.
func DashSegments(spec string) []float64 {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(fields) == 0 {
		return nil
	}
	segments := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSuffix(strings.TrimSpace(f), "px")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil
		}
		segments[i] = v
	}
	return segments
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
