package catmkore

// A Category is a physical library composed from modules. The members of a
// category are fixed once the category is added to the [Context].
type Category struct {
	Name   string
	Origin string

	modules []*Module
	index   int
}

// Modules returns the names of the member modules in the order they were
// added.
func (c *Category) Modules() []string {
	res := make([]string, len(c.modules))
	for i, m := range c.modules {
		res[i] = m.Name
	}
	return res
}

// PublicHeaders returns the public headers of all member modules.
func (c *Category) PublicHeaders() (hs []string) {
	for _, m := range c.modules {
		hs = append(hs, m.Headers[Public]...)
	}
	return hs
}

func (c *Category) Index() int { return c.index }

func (c *Category) String() string { return c.Name }

// AddCategory creates the category name from modules. Each module must be
// declared and must not belong to any category yet. On error the context is
// left unchanged.
func (c *Context) AddCategory(name string, modules []string, origin string) (*Category, error) {
	if err := checkName(entCategory, name); err != nil {
		return nil, err
	}
	if len(modules) == 0 {
		return nil, EmptyModuleListError{Category: name}
	}
	if cat := c.cats[name]; cat != nil {
		return nil, AlreadyExistsError{Entity: entCategory, Name: name, Origin: cat.Origin}
	}
	seen := make(map[string]bool, len(modules))
	for _, mn := range modules {
		m := c.modules[mn]
		if m == nil {
			return nil, NotFoundError{Entity: entModule, Name: mn}
		}
		if m.parent != "" {
			return nil, AlreadyComposedError{Module: mn, Category: m.parent}
		}
		if seen[mn] {
			return nil, AlreadyComposedError{Module: mn, Category: name}
		}
		seen[mn] = true
	}
	cat := &Category{
		Name:   name,
		Origin: origin,
		index:  len(c.catOrder),
	}
	c.cats[name] = cat
	c.catOrder = append(c.catOrder, cat)
	for _, mn := range modules {
		c.join(cat, c.modules[mn])
	}
	c.trace.declareCategory(cat)
	return cat, nil
}

func (c *Context) join(cat *Category, m *Module) {
	m.parent = cat.Name
	cat.modules = append(cat.modules, m)
}

func (c *Context) HasCategory(name string) bool {
	_, ok := c.cats[name]
	return ok
}

func (c *Context) Category(name string) (*Category, error) {
	if cat := c.cats[name]; cat != nil {
		return cat, nil
	}
	return nil, NotFoundError{Entity: entCategory, Name: name}
}

// Categories returns the names of all categories in declaration order.
func (c *Context) Categories() []string {
	res := make([]string, len(c.catOrder))
	for i, cat := range c.catOrder {
		res[i] = cat.Name
	}
	return res
}
