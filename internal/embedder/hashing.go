package embedder

import (
	"context"
	"math"
	"strings"
	"sync"
	"unicode"
)

const (
	// HASHING_MODEL is recorded as the model of fallback vectors
	HASHING_MODEL = "hashing-tfidf"
	// VOCABULARY_SIZE is the number of distinct terms the fallback vectoriser tracks
	VOCABULARY_SIZE = 256
)

// Vocabulary assigns each new term the next free slot until it is full.
// It is process state shared by every fallback embedding of a phase and is
// cleared with Reset at the start of each phase.
type Vocabulary struct {
	mu    sync.RWMutex
	max   int
	terms map[string]int
	order []string
}

// NewVocabulary creates an empty vocabulary holding at most max terms
func NewVocabulary(max int) *Vocabulary {
	return &Vocabulary{max: max, terms: make(map[string]int, max)}
}

// Observe adds unseen terms in order while there is room
func (v *Vocabulary) Observe(terms []string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, t := range terms {
		if _, ok := v.terms[t]; ok {
			continue
		}
		if len(v.terms) >= v.max {
			return
		}
		v.terms[t] = len(v.terms)
		v.order = append(v.order, t)
	}
}

// Index returns the slot of a term
func (v *Vocabulary) Index(term string) (int, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	i, ok := v.terms[term]
	return i, ok
}

// Len returns the number of tracked terms
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.terms)
}

// Fingerprint identifies the slot layout; two vocabularies with the same terms in the
// same slots share a fingerprint
func (v *Vocabulary) Fingerprint() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return ContentHash(strings.Join(v.order, "\n"))
}

// Reset forgets every term
func (v *Vocabulary) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.terms = make(map[string]int, v.max)
	v.order = nil
}

// hashingProvider is the keyless fallback: bag-of-words counts over the vocabulary,
// L2-normalised and zero-padded to the configured dimension.
type hashingProvider struct {
	vocab      *Vocabulary
	dimensions int
}

// NewHashingProvider creates the fallback provider. Vectors are padded to dimensions so they
// live in the same column as provider vectors.
func NewHashingProvider(vocab *Vocabulary, dimensions int) Provider {
	if dimensions < vocab.max {
		dimensions = vocab.max
	}
	return &hashingProvider{vocab: vocab, dimensions: dimensions}
}

func (p *hashingProvider) Model() string {
	return HASHING_MODEL
}

func (p *hashingProvider) Dimensions() int {
	return p.dimensions
}

// Prepare rebuilds the vocabulary from the whole corpus in order, so that slot
// assignment does not depend on which batch is embedded first.
func (p *hashingProvider) Prepare(texts []string) string {
	p.vocab.Reset()
	for _, t := range texts {
		p.vocab.Observe(Tokenize(t))
	}
	return p.vocab.Fingerprint()
}

func (p *hashingProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, 0, len(texts))
	for _, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		vectors = append(vectors, p.vectorize(text))
	}
	return vectors, nil
}

func (p *hashingProvider) vectorize(text string) []float32 {
	vec := make([]float32, p.dimensions)
	for _, term := range Tokenize(text) {
		if i, ok := p.vocab.Index(term); ok {
			vec[i]++
		}
	}

	var norm float64
	for _, x := range vec {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return vec
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec
}

// Tokenize lower-cases text and splits it on anything that is not a letter or digit
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
