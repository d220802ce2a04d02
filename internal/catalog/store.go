package catalog

import (
	"log"
	"sync/atomic"
)

// Store publica el snapshot vigente del catálogo. La recarga (admin)
// reemplaza el puntero de forma atómica: los requests en vuelo siguen
// leyendo el snapshot viejo sin locks.
type Store struct {
	path string
	cur  atomic.Pointer[Catalog]
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// NewStoreWithSnapshot arma un Store ya cargado, sin CSV detrás (tests,
// catálogos construidos en memoria).
func NewStoreWithSnapshot(c *Catalog) *Store {
	s := &Store{}
	s.cur.Store(c)
	return s
}

// Reload lee el CSV y publica el snapshot nuevo.
func (s *Store) Reload() error {
	c, err := Load(s.path)
	if err != nil {
		return err
	}
	s.cur.Store(c)
	log.Printf("[catalog] %d películas cargadas desde %s", c.Len(), s.path)
	return nil
}

// Get devuelve el snapshot vigente (nil si nunca se cargó).
func (s *Store) Get() *Catalog {
	return s.cur.Load()
}

// Path devuelve la ruta del CSV de origen.
func (s *Store) Path() string { return s.path }
