package recommend

import (
	"sync"

	"wildflix-api/internal/catalog"
)

// Backends posibles del motor (se exponen tal cual en /recommender/status).
const (
	BackendModel    = "knn"
	BackendFallback = "fallback"
)

// NeighborModel es el contrato mínimo que el motor exige a un modelo de
// vecinos pre-entrenado. internal/knn lo implementa; los tests usan fakes.
type NeighborModel interface {
	// QueryNeighbors devuelve, por cada query, índices y distancias en
	// paralelo ordenados por distancia ascendente.
	QueryNeighbors(queries [][]float64, k int) (indices [][]int, distances [][]float64, err error)
	// FittedVector devuelve el vector ajustado de la fila i del catálogo.
	FittedVector(i int) ([]float64, error)
	Metric() string
	Len() int
}

// Options agrupa los tunables del pipeline. El pool se pide bastante más
// grande que N porque el límite por franquicia descarta candidatos altos;
// con un pool justo la lista final se quedaría corta.
type Options struct {
	// pool = max(N*PoolMultiplier, PoolFloor), recortado al catálogo
	PoolMultiplier int
	PoolFloor      int
	// k de vecinos = max(N*NeighborMultiplier, NeighborFloor), recortado al modelo
	NeighborMultiplier int
	NeighborFloor      int
	// máximo de entregas de una misma franquicia por lista
	FranchiseCap int
	// guarda de clave de un solo token: longitud mínima y frecuencia
	// global máxima como primer token del catálogo
	MinSafeKeyLen     int
	MaxFirstTokenFreq int
}

func DefaultOptions() Options {
	return Options{
		PoolMultiplier:     60,
		PoolFloor:          300,
		NeighborMultiplier: 25,
		NeighborFloor:      100,
		FranchiseCap:       2,
		MinSafeKeyLen:      4,
		MaxFirstTokenFreq:  12,
	}
}

// Item es una recomendación: índice de fila del catálogo + score.
type Item struct {
	Index int
	Key   string
	Score float64
}

// Result es la salida de una llamada al motor. Backend indica qué scorer
// produjo los items; Reason explica la degradación cuando aplica.
type Result struct {
	Items   []Item
	Backend string
	Metric  string
	Reason  string
}

// Engine es el pipeline completo: scorer (modelo o fallback) → pool
// ordenado → límite por franquicia. No guarda estado mutable entre
// llamadas salvo la memoización de frecuencias de títulos, protegida
// por mutex, así que es seguro para requests concurrentes.
type Engine struct {
	opts Options

	mu       sync.Mutex
	freq     map[string]int
	freqRows int
}

func NewEngine(opts Options) *Engine {
	def := DefaultOptions()
	if opts.PoolMultiplier <= 0 {
		opts.PoolMultiplier = def.PoolMultiplier
	}
	if opts.PoolFloor <= 0 {
		opts.PoolFloor = def.PoolFloor
	}
	if opts.NeighborMultiplier <= 0 {
		opts.NeighborMultiplier = def.NeighborMultiplier
	}
	if opts.NeighborFloor <= 0 {
		opts.NeighborFloor = def.NeighborFloor
	}
	if opts.FranchiseCap <= 0 {
		opts.FranchiseCap = def.FranchiseCap
	}
	if opts.MinSafeKeyLen <= 0 {
		opts.MinSafeKeyLen = def.MinSafeKeyLen
	}
	if opts.MaxFirstTokenFreq <= 0 {
		opts.MaxFirstTokenFreq = def.MaxFirstTokenFreq
	}
	return &Engine{opts: opts}
}

// Recommend genera hasta n recomendaciones para un set de favoritos.
// model puede ser nil (sin modelo cargado); modelReason documenta por qué.
// Nunca devuelve error: cualquier condición de entrada insuficiente o
// fallo del modelo degrada a menos resultados o a lista vacía.
func (e *Engine) Recommend(cat *catalog.Catalog, model NeighborModel, modelReason string, favorites []string, n int) Result {
	if cat == nil || cat.Len() == 0 || n <= 0 || len(favorites) == 0 {
		return Result{Backend: BackendFallback, Reason: "sin favoritos o catálogo vacío"}
	}

	favKeys := make(map[string]bool, len(favorites))
	for _, k := range favorites {
		if k != "" {
			favKeys[k] = true
		}
	}
	if len(favKeys) == 0 {
		return Result{Backend: BackendFallback, Reason: "sin favoritos o catálogo vacío"}
	}

	pool := clampPool(n*e.opts.PoolMultiplier, e.opts.PoolFloor, cat.Len())

	if model != nil {
		out := e.modelScores(cat, model, favKeys, n)
		if !out.degraded {
			items := e.selectTop(cat, e.rankPool(cat, out.scores, favKeys, pool), n)
			return Result{Items: items, Backend: BackendModel, Metric: model.Metric()}
		}
		modelReason = out.reason
	}

	scores, ok := fallbackScores(cat, favKeys)
	if !ok {
		return Result{Backend: BackendFallback, Reason: "favoritos sin señal de contenido"}
	}
	items := e.selectTop(cat, e.rankPool(cat, scores, favKeys, pool), n)
	return Result{Items: items, Backend: BackendFallback, Reason: modelReason}
}

// SimilarTo trata una película como único favorito.
func (e *Engine) SimilarTo(cat *catalog.Catalog, model NeighborModel, modelReason string, imdbKey string, n int) Result {
	return e.Recommend(cat, model, modelReason, []string{imdbKey}, n)
}

func clampPool(size, floor, max int) int {
	if size < floor {
		size = floor
	}
	if size > max {
		size = max
	}
	return size
}
