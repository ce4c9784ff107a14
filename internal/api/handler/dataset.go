package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/advising"
	"github.com/vfg2006/marketing-insights-api/internal/usecases/simulating"
	"github.com/vfg2006/marketing-insights-api/pkg/apiErrors"
)

const (
	exportFormatCSV  = "csv"
	exportFormatXLSX = "xlsx"
)

// GetDataset devolve o dataset completo; ?publisher= filtra os registros
func GetDataset(datasets advising.DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dataset := datasets.Get()

		publisher := strings.TrimSpace(r.URL.Query().Get("publisher"))
		if publisher == "" {
			writeJSON(w, http.StatusOK, dataset)
			return
		}

		profile, ok := dataset.Profile(publisher)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrPublisherNotFound, fmt.Sprintf("Publisher %q não encontrado", publisher), nil)
			return
		}

		filtered := *dataset
		filtered.Profiles = []domain.ChannelProfile{*profile}
		filtered.Records = dataset.RecordsByPublisher(profile.Publisher)
		writeJSON(w, http.StatusOK, filtered)
	}
}

// GetDatasetSummary agrega o dataset por uma dimensão (?by=publisher por padrão)
func GetDatasetSummary(datasets advising.DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dimension := domain.Dimension(r.URL.Query().Get("by"))
		if dimension == "" {
			dimension = domain.DimensionPublisher
		}
		if !dimension.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, fmt.Sprintf("Dimensão %q inválida", dimension), map[string]any{
				"accepted": domain.Dimensions(),
			})
			return
		}

		records := datasets.Get().Records
		writeJSON(w, http.StatusOK, map[string]any{
			"dimension": dimension,
			"total":     simulating.Total(records),
			"groups":    simulating.Summarize(records, dimension),
		})
	}
}

// ExportDataset exporta os registros em CSV ou XLSX
func ExportDataset(datasets advising.DatasetProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		format := strings.ToLower(r.URL.Query().Get("format"))
		if format == "" {
			format = exportFormatCSV
		}

		var (
			buffer      bytes.Buffer
			err         error
			contentType string
		)

		records := datasets.Get().Records
		switch format {
		case exportFormatCSV:
			contentType = "text/csv; charset=utf-8"
			err = simulating.WriteCSV(&buffer, records)
		case exportFormatXLSX:
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
			err = simulating.WriteXLSX(&buffer, records)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido. Valores aceitos: csv, xlsx", nil)
			return
		}

		if err != nil {
			logrus.WithError(err).WithField("format", format).Error("Erro ao exportar dataset")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao exportar dataset", nil)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="marketing_performance.%s"`, format))
		_, _ = w.Write(buffer.Bytes())
	}
}
