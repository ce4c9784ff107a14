package advising

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStructured(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr bool
		check   func(t *testing.T, insight, recommendation string, steps []string)
	}{
		{
			name:  "JSON puro",
			reply: `{"insight":"Meta satura perto de $300k","action":"Reduzir 10%","recommendation":"Realocar para Search","next_steps":["Testar criativos"," ",""]}`,
			check: func(t *testing.T, insight, recommendation string, steps []string) {
				assert.Equal(t, "Meta satura perto de $300k", insight)
				assert.Equal(t, "Realocar para Search", recommendation)
				assert.Equal(t, []string{"Testar criativos"}, steps)
			},
		},
		{
			name:  "JSON em bloco de código",
			reply: "```json\n{\"insight\":\" ROAS caiu \",\"recommendation\":\"Pausar CTV\"}\n```",
			check: func(t *testing.T, insight, recommendation string, steps []string) {
				assert.Equal(t, "ROAS caiu", insight)
				assert.Equal(t, "Pausar CTV", recommendation)
				assert.Empty(t, steps)
			},
		},
		{name: "Sem recommendation", reply: `{"insight":"x","action":"y"}`, wantErr: true},
		{name: "Insight em branco", reply: `{"insight":"   ","recommendation":"r"}`, wantErr: true},
		{name: "Texto livre", reply: "Insight: algo", wantErr: true},
		{name: "JSON inválido", reply: `{"insight": "x",`, wantErr: true},
		{name: "Tipo errado", reply: `{"insight":"x","recommendation":"r","next_steps":"um passo"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sections, err := ParseStructured(tt.reply)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedResponse)
				assert.Nil(t, sections)
				return
			}

			require.NoError(t, err)
			tt.check(t, sections.Insight, sections.Recommendation, sections.NextSteps)
		})
	}
}

func TestParseLabeled(t *testing.T) {
	reply := `## Insight
Google Search lidera o ROAS com 4.1.
**Action:** Aumentar o orçamento de Search em 15%.
Recommendation:
Manter TikTok abaixo do ponto de saturação.
1. Next Steps:
- Revisar lances semanalmente
2) Testar novos formatos

* Medir o impacto em CPA`

	sections, err := ParseLabeled(reply)

	require.NoError(t, err)
	assert.Equal(t, "Google Search lidera o ROAS com 4.1.", sections.Insight)
	assert.Equal(t, "Aumentar o orçamento de Search em 15%.", sections.Action)
	assert.Equal(t, "Manter TikTok abaixo do ponto de saturação.", sections.Recommendation)
	assert.Equal(t, []string{
		"Revisar lances semanalmente",
		"Testar novos formatos",
		"Medir o impacto em CPA",
	}, sections.NextSteps)
}

func TestParseLabeled_Headings(t *testing.T) {
	tests := []struct {
		line string
		want sectionKey
		rest string
	}{
		{"Insight", sectionInsight, ""},
		{"### Insights:", sectionInsight, ""},
		{"**Insight:** ROAS estável", sectionInsight, "ROAS estável"},
		{"**Action**: pausar", sectionAction, "pausar"},
		{"3. Recommendations", sectionRecommendation, ""},
		{"NEXT STEPS:", sectionNextSteps, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, rest, ok := parseHeading(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, key)
			assert.Equal(t, tt.rest, rest)
		})
	}

	for _, line := range []string{"Insight is strong this month", "Performance: boa", "- Action"} {
		_, _, ok := parseHeading(line)
		assert.False(t, ok, line)
	}
}

func TestParseLabeled_Failures(t *testing.T) {
	_, err := ParseLabeled("O desempenho geral está bom.\nSem cabeçalhos aqui.")
	assert.ErrorIs(t, err, ErrNoSections)

	_, err = ParseLabeled("")
	assert.ErrorIs(t, err, ErrNoSections)

	_, err = ParseLabeled("Resumo inicial\nInsight: algo")
	assert.ErrorIs(t, err, ErrUnlabeledContent)
}

func TestParse(t *testing.T) {
	t.Run("Prefere o contrato JSON", func(t *testing.T) {
		sections, err := Parse(`{"insight":"i","recommendation":"r"}`)
		require.NoError(t, err)
		assert.Equal(t, "i", sections.Insight)
	})

	t.Run("Cai para os cabeçalhos", func(t *testing.T) {
		sections, err := Parse("Insight: i\nRecommendation: r")
		require.NoError(t, err)
		assert.Equal(t, "r", sections.Recommendation)
	})

	t.Run("Devolve as duas falhas", func(t *testing.T) {
		_, err := Parse("texto sem estrutura")
		assert.ErrorIs(t, err, ErrMalformedResponse)
		assert.ErrorIs(t, err, ErrNoSections)
		assert.True(t, IsResponseError(err))
	})
}
