package directory

import (
	"context"

	"github.com/wichananm65/advocate-directory/internal/advocate"
)

// View is everything the rendering layer needs for one filter state.
type View struct {
	Data             []advocate.Response `json:"data"`
	DegreeOptions    []string            `json:"degreeOptions"`
	SpecialtyOptions []string            `json:"specialtyOptions"`
	State            FilterState         `json:"state"`
	Total            int                 `json:"total"`
	Matched          int                 `json:"matched"`
	Loading          bool                `json:"loading"`
	Empty            bool                `json:"empty"`
}

// Options lists the selectable values for the structured filters.
type Options struct {
	Degrees     []string `json:"degrees"`
	Specialties []string `json:"specialties"`
}

type Service struct {
	holder *Holder
	engine *Engine
	loader *Loader
}

func NewService(holder *Holder, engine *Engine, loader *Loader) *Service {
	return &Service{holder: holder, engine: engine, loader: loader}
}

// View filters the current store with state.
func (s *Service) View(state FilterState) View {
	state = state.Canonical()
	store := s.holder.Current()
	matched := s.engine.Filter(store, state)
	return View{
		Data:             advocate.ToResponseList(matched),
		DegreeOptions:    DegreeOptions(store),
		SpecialtyOptions: SpecialtyOptions(store),
		State:            state,
		Total:            store.Len(),
		Matched:          len(matched),
		Loading:          s.holder.IsLoading(),
		Empty:            s.holder.IsEmpty(),
	}
}

func (s *Service) Options() Options {
	store := s.holder.Current()
	return Options{
		Degrees:     DegreeOptions(store),
		Specialties: SpecialtyOptions(store),
	}
}

// Refresh reloads the store from the source and drops memoized results of older stores.
func (s *Service) Refresh(ctx context.Context) (*Store, error) {
	prev := s.holder.Current()
	store, err := s.loader.Refresh(ctx)
	if store != prev {
		s.engine.Purge()
	}
	return store, err
}
