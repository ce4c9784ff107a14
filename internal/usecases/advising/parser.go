package advising

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type sectionKey int

const (
	sectionNone sectionKey = iota
	sectionInsight
	sectionAction
	sectionRecommendation
	sectionNextSteps
)

var sectionHeadings = map[string]sectionKey{
	"insight":         sectionInsight,
	"insights":        sectionInsight,
	"key insight":     sectionInsight,
	"action":          sectionAction,
	"actions":         sectionAction,
	"action items":    sectionAction,
	"recommendation":  sectionRecommendation,
	"recommendations": sectionRecommendation,
	"next steps":      sectionNextSteps,
	"next step":       sectionNextSteps,
}

var (
	numberingPrefix = regexp.MustCompile(`^\d+[.)]\s*`)
	bulletPrefix    = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+`)
)

// Parse tenta o contrato JSON e, se falhar, os cabeçalhos rotulados.
// Quando nenhum dos dois funciona, devolve as duas falhas juntas.
func Parse(reply string) (*domain.AnalysisSections, error) {
	sections, structuredErr := ParseStructured(reply)
	if structuredErr == nil {
		return sections, nil
	}

	sections, labeledErr := ParseLabeled(reply)
	if labeledErr == nil {
		return sections, nil
	}

	return nil, errors.Join(structuredErr, labeledErr)
}

// ParseStructured decodifica o contrato {"insight","action","recommendation","next_steps"}.
// insight e recommendation são obrigatórios.
func ParseStructured(reply string) (*domain.AnalysisSections, error) {
	payload := stripCodeFence(reply)
	if !strings.HasPrefix(payload, "{") {
		return nil, fmt.Errorf("%w: conteúdo não é um objeto JSON", ErrMalformedResponse)
	}

	var sections domain.AnalysisSections
	if err := json.UnmarshalFromString(payload, &sections); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}

	sections.Insight = strings.TrimSpace(sections.Insight)
	sections.Action = strings.TrimSpace(sections.Action)
	sections.Recommendation = strings.TrimSpace(sections.Recommendation)
	sections.NextSteps = compactSteps(sections.NextSteps)

	var missing []string
	if sections.Insight == "" {
		missing = append(missing, "insight")
	}
	if sections.Recommendation == "" {
		missing = append(missing, "recommendation")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: campos obrigatórios ausentes: %s", ErrMalformedResponse, strings.Join(missing, ", "))
	}

	return &sections, nil
}

// ParseLabeled lê respostas em texto com cabeçalhos Insight / Action /
// Recommendation / Next Steps. Linhas seguintes vão para a última seção vista.
func ParseLabeled(reply string) (*domain.AnalysisSections, error) {
	buckets := map[sectionKey][]string{}
	current := sectionNone
	found := false
	unlabeled := ""

	for _, line := range strings.Split(reply, "\n") {
		trimmed := strings.TrimSpace(line)

		if key, rest, ok := parseHeading(trimmed); ok {
			current = key
			found = true
			if rest != "" {
				buckets[current] = append(buckets[current], rest)
			}
			continue
		}

		if trimmed == "" {
			continue
		}

		if current == sectionNone {
			if unlabeled == "" {
				unlabeled = trimmed
			}
			continue
		}
		buckets[current] = append(buckets[current], trimmed)
	}

	if !found {
		return nil, ErrNoSections
	}
	if unlabeled != "" {
		return nil, fmt.Errorf("%w: %q", ErrUnlabeledContent, truncate(unlabeled, 60))
	}

	steps := make([]string, 0, len(buckets[sectionNextSteps]))
	for _, step := range buckets[sectionNextSteps] {
		steps = append(steps, bulletPrefix.ReplaceAllString(step, ""))
	}

	return &domain.AnalysisSections{
		Insight:        strings.Join(buckets[sectionInsight], "\n"),
		Action:         strings.Join(buckets[sectionAction], "\n"),
		Recommendation: strings.Join(buckets[sectionRecommendation], "\n"),
		NextSteps:      compactSteps(steps),
	}, nil
}

// parseHeading aceita variações como "## Insight", "**Insight:** texto" e "1. Next Steps:"
func parseHeading(line string) (sectionKey, string, bool) {
	if line == "" {
		return sectionNone, "", false
	}

	candidate := strings.TrimLeft(line, "#>*_ \t")
	candidate = numberingPrefix.ReplaceAllString(candidate, "")
	candidate = strings.TrimLeft(candidate, "*_ ")

	label, rest, _ := strings.Cut(candidate, ":")
	label = strings.ToLower(strings.Trim(label, "*_# \t"))

	key, ok := sectionHeadings[label]
	if !ok {
		return sectionNone, "", false
	}

	return key, strings.TrimSpace(strings.TrimLeft(rest, "*_ ")), true
}

func stripCodeFence(reply string) string {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	// descarta a linha de abertura (``` ou ```json) e a cerca de fechamento
	if newline := strings.Index(trimmed, "\n"); newline >= 0 {
		trimmed = trimmed[newline+1:]
	} else {
		trimmed = strings.TrimPrefix(trimmed, "```")
	}
	trimmed = strings.TrimSpace(trimmed)
	trimmed = strings.TrimSuffix(trimmed, "```")

	return strings.TrimSpace(trimmed)
}

func compactSteps(steps []string) []string {
	result := make([]string, 0, len(steps))
	for _, step := range steps {
		if step = strings.TrimSpace(step); step != "" {
			result = append(result, step)
		}
	}
	return result
}

func truncate(value string, size int) string {
	runes := []rune(value)
	if len(runes) <= size {
		return value
	}
	return string(runes[:size]) + "..."
}
