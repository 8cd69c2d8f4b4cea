// Package view modela el ciclo de vida de una carga de datos de una página:
// empieza en Loading y se resuelve una sola vez en Success o Failed.
package view

import (
	"context"
	"encoding/json"
)

type Status int

const (
	Loading Status = iota
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "failed"
	}
	return "unknown"
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

type State[T any] struct {
	Status Status `json:"status"`
	Data   T      `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

// Retryable es true en toda carga fallida; reintentar es volver a cargar.
func (s State[T]) Retryable() bool { return s.Status == Failed }

// Load ejecuta fetch y resuelve el estado. ok es false si ctx terminó antes
// de llegar el resultado; en ese caso el llamador debe descartarlo.
func Load[T any](ctx context.Context, fetch func(context.Context) (T, error)) (st State[T], ok bool) {
	st.Status = Loading
	data, err := fetch(ctx)
	if ctx.Err() != nil {
		return st, false
	}
	if err != nil {
		st.Status = Failed
		st.Error = err.Error()
		st.Err = err
		return st, true
	}
	st.Status = Success
	st.Data = data
	return st, true
}
