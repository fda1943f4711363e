package workflow

import (
	"errors"
	"fmt"

	"github.com/bernardoxlima/arqOS-mvp-sub004/internal/domain/entities"
)

var ErrNoStagesConfigured = errors.New("no stages configured")

type catalogKey struct {
	Service  entities.ServiceType
	Modality entities.Modality
}

// Catalog holds the fixed, ordered stage lists per (service type, modality).
//
// Lists are loaded once per process and read-only afterwards. StagesFor returns
// a copy so the project snapshot can never alias catalog memory.
type Catalog struct {
	stages map[catalogKey][]entities.StageDefinition
}

// Stage categories used for grouping/coloring in the UI layer.
const (
	CategoryDescoberta = "descoberta"
	CategoryCriacao    = "criacao"
	CategoryExecucao   = "execucao"
	CategoryEntrega    = "entrega"
)

// DefaultCatalog returns the standard stage lists.
func DefaultCatalog() *Catalog {
	c := &Catalog{stages: map[catalogKey][]entities.StageDefinition{}}

	decorOnline := stageList(
		stage("briefing", "Briefing", CategoryDescoberta),
		stage("moodboard", "Moodboard e conceito", CategoryCriacao),
		stage("layout", "Layout dos ambientes", CategoryCriacao),
		stage("detalhamento", "Detalhamento e especificação", CategoryCriacao),
		stage("caderno", "Caderno final", CategoryEntrega),
		stage("entrega", "Entrega", CategoryEntrega),
	)
	decorPresencial := stageList(
		stage("briefing", "Briefing", CategoryDescoberta),
		stage("medicao", "Visita técnica e medição", CategoryDescoberta),
		stage("moodboard", "Moodboard e conceito", CategoryCriacao),
		stage("layout", "Layout dos ambientes", CategoryCriacao),
		stage("detalhamento", "Detalhamento e especificação", CategoryCriacao),
		stage("caderno", "Caderno final", CategoryEntrega),
		stage("entrega", "Entrega presencial", CategoryEntrega),
	)
	producao := stageList(
		stage("visita", "Visita técnica", CategoryDescoberta),
		stage("compras", "Compras e contratações", CategoryExecucao),
		stage("execucao", "Execução e montagem", CategoryExecucao),
		stage("entrega", "Entrega", CategoryEntrega),
	)
	arquitetura := stageList(
		stage("briefing", "Briefing", CategoryDescoberta),
		stage("levantamento", "Levantamento", CategoryDescoberta),
		stage("estudo", "Estudo preliminar", CategoryCriacao),
		stage("executivo", "Projeto executivo", CategoryCriacao),
		stage("entrega", "Entrega", CategoryEntrega),
	)

	c.register(entities.ServiceDecor, entities.ModalityOnline, decorOnline)
	c.register(entities.ServiceDecor, entities.ModalityPresencial, decorPresencial)
	// Producao is in-person only, but both keys resolve to keep callers simple.
	c.register(entities.ServiceProducao, entities.ModalityOnline, producao)
	c.register(entities.ServiceProducao, entities.ModalityPresencial, producao)
	c.register(entities.ServiceArquiteturaExpress, entities.ModalityOnline, arquitetura)
	c.register(entities.ServiceArquiteturaExpress, entities.ModalityPresencial, arquitetura)

	return c
}

func (c *Catalog) register(service entities.ServiceType, modality entities.Modality, stages []entities.StageDefinition) {
	c.stages[catalogKey{Service: service, Modality: modality}] = stages
}

// StagesFor returns a snapshot copy of the stage list for the combination.
func (c *Catalog) StagesFor(service entities.ServiceType, modality entities.Modality) ([]entities.StageDefinition, error) {
	stages, ok := c.stages[catalogKey{Service: service, Modality: modality}]
	if !ok || len(stages) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrNoStagesConfigured, service, modality)
	}
	out := make([]entities.StageDefinition, len(stages))
	copy(out, stages)
	return out, nil
}

func stage(id, label, category string) entities.StageDefinition {
	return entities.StageDefinition{ID: id, Label: label, Category: category}
}

func stageList(stages ...entities.StageDefinition) []entities.StageDefinition {
	for i := range stages {
		stages[i].OrderIndex = i
	}
	return stages
}
