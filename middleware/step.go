package middleware

// step is the ordered group of middleware M of a single stack step.
type step[M ider] struct {
	ids *orderedIDs
}

func newStep[M ider]() step[M] {
	return step[M]{ids: newOrderedIDs()}
}

// Get retrieves the middleware identified by id. If the middleware is not
// present, returns false.
func (s step[M]) Get(id string) (M, bool) {
	v, ok := s.ids.Get(id)
	if !ok {
		var zero M
		return zero, false
	}
	return v.(M), true
}

// Add injects the middleware to the relative position of the middleware group.
// Returns an error if the middleware already exists.
func (s step[M]) Add(m M, pos RelativePosition) error {
	return s.ids.Add(m, pos)
}

// Insert injects the middleware relative to an existing middleware ID.
// Returns error if the original middleware does not exist, or the middleware
// being added already exists.
func (s step[M]) Insert(m M, relativeTo string, pos RelativePosition) error {
	return s.ids.Insert(m, relativeTo, pos)
}

// Swap removes the middleware by id, replacing it with the new middleware.
// Returns the middleware removed, or error if the middleware to be removed
// doesn't exist.
func (s step[M]) Swap(id string, m M) (M, error) {
	var zero M
	removed, err := s.ids.Swap(id, m)
	if err != nil {
		return zero, err
	}
	if removed == nil {
		return zero, nil
	}
	return removed.(M), nil
}

// Remove removes the middleware by id. Returns the middleware removed, or
// error if the middleware to be removed doesn't exist.
func (s step[M]) Remove(id string) (M, error) {
	var zero M
	removed, _ := s.ids.Get(id)
	if err := s.ids.Remove(id); err != nil {
		return zero, err
	}
	if removed == nil {
		return zero, nil
	}
	return removed.(M), nil
}

// List returns a list of the middleware in the step.
func (s step[M]) List() []string {
	return s.ids.List()
}

// Clear removes all middleware in the step.
func (s step[M]) Clear() {
	s.ids.Clear()
}

func (s step[M]) middleware() []M {
	order := s.ids.GetOrder()
	ms := make([]M, len(order))
	for i, v := range order {
		ms[i] = v.(M)
	}
	return ms
}
