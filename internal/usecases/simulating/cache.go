package simulating

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-insights-api/internal/domain"
	"github.com/vfg2006/marketing-insights-api/pkg/metrics"
)

// DatasetCache mantém o dataset atual em memória. Só uma geração roda por vez.
type DatasetCache struct {
	generator *Generator
	seed      uint64
	refreshMu sync.Mutex
	mu        sync.RWMutex
	dataset   *domain.Dataset
	refreshes int
}

func NewDatasetCache(generator *Generator, seed uint64) *DatasetCache {
	return &DatasetCache{
		generator: generator,
		seed:      seed,
	}
}

// Get retorna o dataset atual, gerando na primeira chamada
func (c *DatasetCache) Get() *domain.Dataset {
	c.mu.RLock()
	dataset := c.dataset
	c.mu.RUnlock()

	if dataset != nil {
		return dataset
	}

	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// outro leitor pode ter gerado enquanto esperávamos
	c.mu.RLock()
	dataset = c.dataset
	c.mu.RUnlock()
	if dataset != nil {
		return dataset
	}

	return c.generate()
}

// Refresh regenera o dataset com a semente configurada
func (c *DatasetCache) Refresh() *domain.Dataset {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	return c.generate()
}

func (c *DatasetCache) generate() *domain.Dataset {
	startTime := time.Now()
	dataset := c.generator.Generate(c.seed)

	c.mu.Lock()
	c.dataset = dataset
	c.refreshes++
	refreshes := c.refreshes
	c.mu.Unlock()

	metrics.DatasetRefreshes.Inc()

	logrus.WithFields(logrus.Fields{
		"dataset_seed":      c.seed,
		"dataset_records":   len(dataset.Records),
		"dataset_refreshes": refreshes,
		"duration_ms":       time.Since(startTime).Milliseconds(),
	}).Info("Dataset sintético gerado")

	return dataset
}

// Reset descarta o dataset; a próxima chamada a Get gera um novo
func (c *DatasetCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dataset = nil
}

// Refreshes retorna quantas vezes o dataset foi gerado
func (c *DatasetCache) Refreshes() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.refreshes
}
