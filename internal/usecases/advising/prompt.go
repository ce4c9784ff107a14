package advising

import (
	"fmt"
	"strings"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/simulating"
)

const systemPersona = `You are a senior marketing performance analyst advising a media team.
You answer questions about a paid-media performance dataset covering publishers, channels,
funnel layers, formats and audience segments. Base every statement on the figures provided
in the context, quote numbers with their units, and flag diminishing returns when spend
approaches a channel's saturation point.`

const responseContract = `Reply with a single JSON object and nothing else, using exactly these keys:
{"insight": string, "action": string, "recommendation": string, "next_steps": [string]}
"insight" and "recommendation" must not be empty. Do not wrap the JSON in Markdown.`

const topPublishers = 7

// buildMessages monta persona, contexto do dataset, histórico e a pergunta atual
func buildMessages(
	glossary domain.Glossary,
	dataset *domain.Dataset,
	chart *domain.ChartSpec,
	history []domain.ChatMessage,
	question string,
) []domain.ChatMessage {
	messages := make([]domain.ChatMessage, 0, len(history)+3)
	messages = append(messages,
		domain.ChatMessage{Role: domain.RoleSystem, Content: systemPersona + "\n\n" + responseContract},
		domain.ChatMessage{Role: domain.RoleSystem, Content: datasetContext(glossary, dataset, chart)},
	)
	messages = append(messages, history...)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: question})

	return messages
}

func datasetContext(glossary domain.Glossary, dataset *domain.Dataset, chart *domain.ChartSpec) string {
	var b strings.Builder

	b.WriteString("Dataset dictionary\n")
	fmt.Fprintf(&b, "Dimensions: %s\n", strings.Join(glossary.Dimensions, ", "))
	fmt.Fprintf(&b, "Core metrics: %s\n", strings.Join(glossary.CoreMetrics, ", "))
	fmt.Fprintf(&b, "Additional metrics: %s\n", strings.Join(glossary.AdditionalMetrics, ", "))
	for _, note := range glossary.Notes {
		fmt.Fprintf(&b, "Note: %s\n", note)
	}

	if dataset != nil && len(dataset.Records) > 0 {
		total := simulating.Total(dataset.Records)
		b.WriteString("\nKPI overview\n")
		fmt.Fprintf(&b, "Period: %s to %s (%d rows)\n", dataset.Months[0], dataset.Months[len(dataset.Months)-1], total.Records)
		fmt.Fprintf(&b, "Spend: $%.2f | Revenue: $%.2f | ROAS: %.2f | ROI: %.2f | CPA: $%.2f | CTR: %.2f%% | CVR: %.2f%%\n",
			total.Spend, total.Revenue, total.ROAS, total.ROI, total.CPA, total.CTR*100, total.CVR*100)

		publishers := simulating.Summarize(dataset.Records, domain.DimensionPublisher)
		simulating.SortByROAS(publishers)
		b.WriteString("\nBy publisher (ROAS desc)\n")
		for i, summary := range publishers {
			if i == topPublishers {
				break
			}
			fmt.Fprintf(&b, "- %s: spend $%.2f, revenue $%.2f, ROAS %.2f, CPA $%.2f\n",
				summary.Key, summary.Spend, summary.Revenue, summary.ROAS, summary.CPA)
		}
	}

	if chart != nil {
		fmt.Fprintf(&b, "\nThe dashboard is showing the chart %q (intent: %s).\n", chart.Title, chart.Intent)
		for _, note := range chart.Notes {
			fmt.Fprintf(&b, "Chart note: %s\n", note)
		}
	}

	return b.String()
}
