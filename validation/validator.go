package validation

import (
	"errors"
	"math/rand"
	"strings"
)

// Verdict é o resultado de uma submissão: válida ou não, e o percentual de
// aderência atribuído. isValid nunca é um julgamento real de correção, apenas
// modificação + score > 0.
type Verdict struct {
	IsValid             bool `json:"isValid"`
	AdherencePercentage int  `json:"adherencePercentage"`
}

var ErrMissingField = errors.New("missing required fields")

// Scorer decide o percentual de aderência de uma resposta editada.
// Isolado em interface para que o stub por palavra-chave possa ser trocado por
// um avaliador de verdade sem mexer no gate de modificação.
type Scorer interface {
	Score(prompt, original, edited string) int
}

// band mapeia um marcador escondido no prompt para uma faixa de score.
// A ordem importa: o primeiro marcador presente ganha.
type band struct {
	marker string
	lo, hi int
}

var bands = []band{
	{"pop1", 0, 25},
	{"pop2", 25, 50},
	{"pop3", 50, 75},
	{"pop4", 75, 93},
}

// KeywordScorer é o oráculo placeholder: procura os marcadores no prompt
// (case-insensitive) e sorteia um inteiro uniforme na faixa correspondente.
// Sem marcador, cai na mesma faixa do pop1.
type KeywordScorer struct {
	// Rand opcional para testes determinísticos; nil usa o rand global.
	Rand *rand.Rand
}

func (s KeywordScorer) Score(prompt, original, edited string) int {
	p := strings.ToLower(prompt)
	for _, b := range bands {
		if strings.Contains(p, b.marker) {
			return s.randIn(b.lo, b.hi)
		}
	}
	return s.randIn(0, 25)
}

func (s KeywordScorer) randIn(lo, hi int) int {
	if s.Rand != nil {
		return lo + s.Rand.Intn(hi-lo+1)
	}
	return lo + rand.Intn(hi-lo+1)
}

// Validator aplica o gate de modificação antes de chamar o Scorer.
type Validator struct {
	Scorer Scorer
}

func New() *Validator {
	return &Validator{Scorer: KeywordScorer{}}
}

// Validate exige os três campos; resposta não modificada (trim igual) sai
// direto como {false, 0}, sem rodar o scorer.
func (v *Validator) Validate(prompt, original, edited string) (Verdict, error) {
	if prompt == "" || original == "" || edited == "" {
		return Verdict{}, ErrMissingField
	}
	if strings.TrimSpace(edited) == strings.TrimSpace(original) {
		return Verdict{IsValid: false, AdherencePercentage: 0}, nil
	}
	pct := v.Scorer.Score(prompt, original, edited)
	return Verdict{IsValid: pct > 0, AdherencePercentage: pct}, nil
}
