package knn

import (
	"fmt"
	"log"
	"os"
	"sync"
)

// Cache memoiza modelos por ruta. La firma (mtime + tamaño) invalida la
// entrada si alguien reemplaza el fichero: la recarga es transparente.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	sig   string
	model *Model
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

func fileSig(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d:%d", info.ModTime().UnixNano(), info.Size()), nil
}

// Get devuelve el modelo de esa ruta, cargándolo si hace falta.
// Cualquier problema (fichero ausente, gob corrupto, métrica rara) se
// devuelve como error para que el caller degrade al fallback.
func (c *Cache) Get(path string) (*Model, error) {
	sig, err := fileSig(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[path]; ok && e.sig == sig {
		return e.model, nil
	}

	m, err := Load(path)
	if err != nil {
		// no cacheamos fallos: el fichero puede arreglarse sin reiniciar
		delete(c.entries, path)
		return nil, err
	}

	c.entries[path] = cacheEntry{sig: sig, model: m}
	log.Printf("[knn] modelo %s cargado (%d vectores, métrica %s)", path, m.Len(), m.Metric())
	return m, nil
}
