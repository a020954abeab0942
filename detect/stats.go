package detect

import (
	"fmt"

	"github.com/npillmayer/akshara"
	"github.com/samber/lo"
)

// Stats describes the outcome of a conversion, in runes.
type Stats struct {
	OriginalLength  int     // input size
	ConvertedLength int     // output size
	ScriptRunes     int     // Kannada runes in the output
	Compression     float64 // ConvertedLength / OriginalLength
}

// Measure derives conversion statistics from a conversion's input and
// output. Legacy encodings spend several code units per aksara, so a
// successful conversion usually compresses. Few ScriptRunes on text
// expected to be Kannada hint at an input that was not legacy-encoded
// after all.
func Measure(original, converted string) Stats {
	stats := Stats{
		OriginalLength:  len([]rune(original)),
		ConvertedLength: len([]rune(converted)),
		ScriptRunes:     lo.CountBy([]rune(converted), akshara.IsKannada),
	}
	if stats.OriginalLength > 0 {
		stats.Compression = float64(stats.ConvertedLength) / float64(stats.OriginalLength)
	}
	return stats
}

func (s Stats) String() string {
	return fmt.Sprintf("%d runes in, %d out, %d Kannada, compression %.2f",
		s.OriginalLength, s.ConvertedLength, s.ScriptRunes, s.Compression)
}
