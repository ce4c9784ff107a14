package domain

import (
	"strings"
	"time"
)

// PerformanceRecord representa uma linha sintética de performance de mídia
type PerformanceRecord struct {
	Month           string  `json:"month"`
	Publisher       string  `json:"publisher"`
	Channel         string  `json:"channel"`
	FunnelLayer     string  `json:"funnel_layer"`
	Format          string  `json:"format"`
	AudienceSegment string  `json:"audience_segment"`
	Spend           float64 `json:"spend"`
	Impressions     int64   `json:"impressions"`
	Clicks          int64   `json:"clicks"`
	Conversions     int64   `json:"conversions"`
	Revenue         float64 `json:"revenue"`
	ROAS            float64 `json:"roas"`
	ROI             float64 `json:"roi"`
	CPA             float64 `json:"cpa"`
	CTR             float64 `json:"ctr"`
	CVR             float64 `json:"cvr"`
}

// Dataset agrupa os registros gerados com a semente usada
type Dataset struct {
	Seed        uint64               `json:"seed"`
	GeneratedAt time.Time            `json:"generated_at"`
	Months      []string             `json:"months"`
	Profiles    []ChannelProfile     `json:"profiles"`
	Records     []*PerformanceRecord `json:"records"`
}

// RecordsByPublisher filtra os registros de um publisher
func (d *Dataset) RecordsByPublisher(publisher string) []*PerformanceRecord {
	if d == nil {
		return nil
	}

	out := make([]*PerformanceRecord, 0)
	for _, record := range d.Records {
		if record.Publisher == publisher {
			out = append(out, record)
		}
	}

	return out
}

// Profile busca o perfil de canal pelo nome do publisher, sem diferenciar maiúsculas
func (d *Dataset) Profile(publisher string) (*ChannelProfile, bool) {
	if d == nil {
		return nil, false
	}

	for i := range d.Profiles {
		if strings.EqualFold(d.Profiles[i].Publisher, publisher) {
			return &d.Profiles[i], true
		}
	}

	return nil, false
}

// Dimension identifica uma coluna categórica do dataset
type Dimension string

const (
	DimensionMonth     Dimension = "month"
	DimensionPublisher Dimension = "publisher"
	DimensionChannel   Dimension = "channel"
	DimensionFunnel    Dimension = "funnel_layer"
	DimensionFormat    Dimension = "format"
	DimensionAudience  Dimension = "audience_segment"
)

// Dimensions lista as dimensões suportadas nas agregações
func Dimensions() []Dimension {
	return []Dimension{
		DimensionMonth,
		DimensionPublisher,
		DimensionChannel,
		DimensionFunnel,
		DimensionFormat,
		DimensionAudience,
	}
}

// Value retorna o valor da dimensão para o registro
func (d Dimension) Value(record *PerformanceRecord) string {
	switch d {
	case DimensionMonth:
		return record.Month
	case DimensionPublisher:
		return record.Publisher
	case DimensionChannel:
		return record.Channel
	case DimensionFunnel:
		return record.FunnelLayer
	case DimensionFormat:
		return record.Format
	case DimensionAudience:
		return record.AudienceSegment
	}
	return ""
}

// IsValid verifica se a dimensão é conhecida
func (d Dimension) IsValid() bool {
	for _, dim := range Dimensions() {
		if dim == d {
			return true
		}
	}
	return false
}

// MetricsSummary representa os totais agregados de um grupo de registros
type MetricsSummary struct {
	Key         string  `json:"key"`
	Records     int     `json:"records"`
	Spend       float64 `json:"spend"`
	Revenue     float64 `json:"revenue"`
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	ROAS        float64 `json:"roas"`
	ROI         float64 `json:"roi"`
	CPA         float64 `json:"cpa"`
	CTR         float64 `json:"ctr"`
	CVR         float64 `json:"cvr"`
}

// Recalculate recalcula as razões a partir dos totais
func (m *MetricsSummary) Recalculate() {
	m.ROAS, m.ROI, m.CPA, m.CTR, m.CVR = 0, 0, 0, 0, 0

	if m.Spend > 0 {
		m.ROAS = m.Revenue / m.Spend
		m.ROI = (m.Revenue - m.Spend) / m.Spend
	}
	if m.Conversions > 0 {
		m.CPA = m.Spend / float64(m.Conversions)
	}
	if m.Impressions > 0 {
		m.CTR = float64(m.Clicks) / float64(m.Impressions)
	}
	if m.Clicks > 0 {
		m.CVR = float64(m.Conversions) / float64(m.Clicks)
	}
}
