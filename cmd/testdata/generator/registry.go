package generator

import "fmt"

// Registry maps generator names to generator factory functions
// We use factory functions to allow parameterization (e.g., VocabSize)
var Registry = map[string]func() Generator{
	"phrases": func() Generator { return &PhraseGenerator{Skewed: true} },
	"uniform": func() Generator { return &PhraseGenerator{} },
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown generator: %s", name)
	}
	return factory(), nil
}

// List returns all available generator names
func List() []string {
	var names []string
	for name := range Registry {
		names = append(names, name)
	}
	return names
}

// SetVocabSize updates the vocabulary size for the phrase generators
func SetVocabSize(name string, size int) {
	if name == "phrases" {
		Registry[name] = func() Generator { return &PhraseGenerator{Skewed: true, VocabSize: size} }
	}
	if name == "uniform" {
		Registry[name] = func() Generator { return &PhraseGenerator{VocabSize: size} }
	}
}
