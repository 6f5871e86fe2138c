package pattern

import (
	"log"
)

// Generator generates marker patterns. The zero value is ready to use.
type Generator struct {
	// OptLogger receives a warning when Generate rejects its
	// arguments. The standard logger is used if nil.
	OptLogger *log.Logger
}

// Generate calls Generator.Generate using a zero Generator, meaning
// warnings are written to the standard logger.
func Generate(alphabet string, numPatterns int, patternLength int) []string {
	return (&Generator{}).Generate(alphabet, numPatterns, patternLength)
}

// Generate returns numPatterns strings, each patternLength symbols
// long, counting in base len(alphabet) starting from alphabet[0]
// repeated patternLength times.
//
// The counter wraps to the first pattern once every combination
// has been emitted.
//
// If the alphabet is empty, or if numPatterns or patternLength is
// less than one, a warning is logged and an empty slice is returned.
// Refer to Validate for checking the arguments beforehand.
func (o *Generator) Generate(alphabet string, numPatterns int, patternLength int) []string {
	err := Validate(alphabet, numPatterns, patternLength)
	if err != nil {
		loggerOrDefault(o.OptLogger).Println("warning:", err)
		return nil
	}

	odometer := newOdometer(NewAlphabet(alphabet), patternLength)

	patterns := make([]string, 0, preallocLen(numPatterns))

	for i := 0; i < numPatterns; i++ {
		patterns = append(patterns, odometer.String())

		odometer.Increment()
	}

	return patterns
}

// maxPrealloc bounds the initial capacity of Generate's result. Larger
// results grow through append instead of failing up front.
const maxPrealloc = 1 << 16

func preallocLen(numPatterns int) int {
	return min(numPatterns, maxPrealloc)
}
