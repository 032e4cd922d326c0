package tui

type routeKind int

const (
	routeList routeKind = iota
	routeNew
	routeDetail
)

// route is one navigable view: /list, /list/new or /list/{id}.
type route struct {
	kind routeKind
	id   string
}

func (r route) String() string {
	switch r.kind {
	case routeNew:
		return "/list/new"
	case routeDetail:
		return "/list/" + r.id
	default:
		return "/list"
	}
}

// history is the navigation stack. The list route is always at the bottom.
type history struct {
	items []route
}

func (h *history) Push(r route) {
	h.items = append(h.items, r)
}

// Back pops one entry. The list route is never popped.
func (h *history) Back() {
	if len(h.items) == 0 {
		return
	}
	h.items = h.items[:len(h.items)-1]
}

func (h history) Current() route {
	if len(h.items) == 0 {
		return route{kind: routeList}
	}
	return h.items[len(h.items)-1]
}
