// Package charting classifica perguntas em intenções de análise e monta a
// especificação de gráfico de cada intenção.
package charting

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
)

var ErrUnknownIntent = errors.New("intenção de análise desconhecida")

// intentRule associa palavras-chave a uma intenção. A ordem importa: a
// primeira regra que casa vence. Palavras-chave casam com palavras inteiras
// (plural aceito); terminadas em "*" casam com o início de uma palavra.
type intentRule struct {
	intent   domain.Intent
	keywords []string
	pattern  *regexp.Regexp
}

var intentRules = []intentRule{
	{
		intent:   domain.IntentSaturation,
		keywords: []string{"diminishing return", "saturat*", "marginal", "inflection", "response curve", "scale spend", "spend curve"},
	},
	{
		intent:   domain.IntentTrend,
		keywords: []string{"trend", "over time", "monthly", "month over month", "season*", "by month"},
	},
	{
		intent:   domain.IntentEfficiency,
		keywords: []string{"cpa", "ctr", "cvr", "conversion rate", "click-through", "cost per", "efficien*"},
	},
	{
		intent:   domain.IntentFunnel,
		keywords: []string{"funnel", "awareness", "consideration"},
	},
	{
		intent:   domain.IntentFormat,
		keywords: []string{"format", "creative", "carousel"},
	},
	{
		intent:   domain.IntentAudience,
		keywords: []string{"audience", "segment*", "retarget*", "prospect*", "lookalike", "loyalty"},
	},
	{
		intent:   domain.IntentPublisher,
		keywords: []string{"publisher", "google", "meta", "youtube", "tiktok", "linkedin", "programmatic", "connected tv"},
	},
	{
		intent:   domain.IntentChannel,
		keywords: []string{"channel", "media mix", "search vs", "social vs"},
	},
}

func init() {
	for i := range intentRules {
		intentRules[i].pattern = keywordPattern(intentRules[i].keywords)
	}
}

func keywordPattern(keywords []string) *regexp.Regexp {
	alternatives := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if stem, ok := strings.CutSuffix(keyword, "*"); ok {
			alternatives = append(alternatives, regexp.QuoteMeta(stem)+`\w*`)
			continue
		}
		alternatives = append(alternatives, regexp.QuoteMeta(keyword)+`s?\b`)
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(alternatives, "|") + `)`)
}

// AllIntents lista todas as intenções suportadas
func AllIntents() []domain.Intent {
	return []domain.Intent{
		domain.IntentOverview,
		domain.IntentSaturation,
		domain.IntentPublisher,
		domain.IntentChannel,
		domain.IntentFunnel,
		domain.IntentFormat,
		domain.IntentAudience,
		domain.IntentTrend,
		domain.IntentEfficiency,
	}
}

// Classify devolve a intenção da pergunta; sem correspondência, overview
func Classify(question string) domain.Intent {
	normalized := strings.ToLower(question)

	for _, rule := range intentRules {
		if rule.pattern.MatchString(normalized) {
			return rule.intent
		}
	}

	return domain.IntentOverview
}

// ParseIntent valida o nome de uma intenção vindo da API
func ParseIntent(value string) (domain.Intent, error) {
	candidate := domain.Intent(strings.ToLower(strings.TrimSpace(value)))

	for _, intent := range AllIntents() {
		if intent == candidate {
			return intent, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownIntent, value)
}
