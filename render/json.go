package render

import (
	"strconv"

	json "github.com/goccy/go-json"

	formwork "github.com/formwork-dev/formwork"
)

// Node is the wire form of a view's declared shape.
type Node struct {
	Kind     string           `json:"kind"`
	Default  string           `json:"default,omitempty"`
	Options  []string         `json:"options,omitempty"`
	Order    []string         `json:"order,omitempty"`
	Children map[string]*Node `json:"children,omitempty"`
	Elem     *Node            `json:"elem,omitempty"`
}

// Error is the wire form of one issue.
type Error struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Payload is the stable machine shape of a view, for API clients that render
// forms on their side.
type Payload struct {
	Shape  *Node             `json:"shape"`
	Values map[string]string `json:"values,omitempty"`
	Errors []Error           `json:"errors,omitempty"`
}

// BuildPayload projects a view into its wire shape.
func BuildPayload(v formwork.View) Payload {
	p := Payload{Shape: wireNode(v.Shape())}
	values := map[string]string{}
	collectValues(v, v.Root(), v.Shape(), values)
	if len(values) > 0 {
		p.Values = values
	}
	for _, it := range v.Issues() {
		p.Errors = append(p.Errors, Error{Path: it.Path.String(), Code: it.Code, Message: it.Message})
	}
	return p
}

// JSON encodes the view's payload.
func JSON(v formwork.View) ([]byte, error) {
	return json.Marshal(BuildPayload(v))
}

func wireNode(n formwork.Node) *Node {
	switch t := n.(type) {
	case formwork.Field:
		return &Node{Kind: t.Kind, Default: t.Default, Options: t.Options}
	case formwork.Group:
		out := &Node{Kind: "group", Order: t.Names, Children: make(map[string]*Node, len(t.Children))}
		for name, child := range t.Children {
			out.Children[name] = wireNode(child)
		}
		return out
	case formwork.List:
		return &Node{Kind: "list", Elem: wireNode(t.Elem)}
	}
	return nil
}

func collectValues(v formwork.View, at formwork.Path, n formwork.Node, out map[string]string) {
	switch t := n.(type) {
	case formwork.Field:
		if value, ok := v.FieldValue(at); ok {
			out[at.String()] = value
		}
	case formwork.Group:
		for _, name := range t.Names {
			collectValues(v, at.Child(name), t.Children[name], out)
		}
	case formwork.List:
		for _, i := range v.Indexes(at) {
			collectValues(v, at.Child(strconv.Itoa(i)), t.Elem, out)
		}
	}
}
