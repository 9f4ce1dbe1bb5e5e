package models

// ProjectForest is a read-only hierarchy view over a flat project slice.
//
// Projects are addressed by index into the slice; parent links are looked up
// by id. Nothing is enforced about cycles: Walk visits each project at most
// once. Projects whose ancestry never reaches a root are walked after the
// roots, each cycle entered at its first project in input order.
type ProjectForest struct {
	projects []Project
	byID     map[int64]int
	children map[int64][]int
	roots    []int
}

// NewProjectForest indexes projects. The slice is not copied or modified.
// A project whose parent is absent from the slice is treated as a root.
func NewProjectForest(projects []Project) *ProjectForest {
	f := &ProjectForest{
		projects: projects,
		byID:     make(map[int64]int, len(projects)),
		children: make(map[int64][]int),
	}
	for i, p := range projects {
		f.byID[p.ID] = i
	}
	for i, p := range projects {
		if p.ParentID != nil {
			if _, ok := f.byID[*p.ParentID]; ok {
				f.children[*p.ParentID] = append(f.children[*p.ParentID], i)
				continue
			}
		}
		f.roots = append(f.roots, i)
	}
	return f
}

// Get returns the project with the given id.
func (f *ProjectForest) Get(id int64) (Project, bool) {
	i, ok := f.byID[id]
	if !ok {
		return Project{}, false
	}
	return f.projects[i], true
}

// Parent returns the parent of the project with the given id, if it is known.
func (f *ProjectForest) Parent(id int64) (Project, bool) {
	p, ok := f.Get(id)
	if !ok || p.ParentID == nil {
		return Project{}, false
	}
	return f.Get(*p.ParentID)
}

// Roots returns the top-level projects in input order.
func (f *ProjectForest) Roots() []Project {
	return f.pick(f.roots)
}

// Children returns the direct children of id in input order.
func (f *ProjectForest) Children(id int64) []Project {
	return f.pick(f.children[id])
}

// Walk visits every project depth-first, roots first, stopping early when fn
// returns false. A project inside a parent cycle is reported at depth 0 when
// its cycle is entered.
func (f *ProjectForest) Walk(fn func(p Project, depth int) bool) {
	seen := make(map[int]bool, len(f.projects))

	var visit func(i, depth int) bool
	visit = func(i, depth int) bool {
		if seen[i] {
			return true
		}
		seen[i] = true
		p := f.projects[i]
		if !fn(p, depth) {
			return false
		}
		for _, c := range f.children[p.ID] {
			if !visit(c, depth+1) {
				return false
			}
		}
		return true
	}

	for _, r := range f.roots {
		if !visit(r, 0) {
			return
		}
	}
	for i := range f.projects {
		if !visit(i, 0) {
			return
		}
	}
}

func (f *ProjectForest) pick(idx []int) []Project {
	out := make([]Project, 0, len(idx))
	for _, i := range idx {
		out = append(out, f.projects[i])
	}
	return out
}
