// Package render contains renderer adapters over formwork views: an HTML
// form renderer built on html/template and a JSON view encoder for clients
// that re-render on their side. Both consume only the View's read-only
// accessor surface and never mutate it.
package render

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	formwork "github.com/formwork-dev/formwork"
)

// HTMLOptions configures the HTML renderer.
type HTMLOptions struct {
	// Labels maps dotted field paths to display labels. Fields without an
	// entry fall back to the last path segment.
	Labels map[string]string
	// Policy sanitizes caller-supplied label text before it reaches the
	// template. Nil means bluemonday.StrictPolicy.
	Policy *bluemonday.Policy
}

type fieldData struct {
	Name    string
	Label   string
	Kind    string
	Value   string
	Checked bool
	Options []optionData
	Errors  []string
}

type optionData struct {
	Value    string
	Selected bool
}

type groupData struct {
	Name   string
	Errors []string
}

var htmlTmpl = template.Must(template.New("formwork").Parse(`
{{- define "field" -}}
<div class="fw-field">
<label for="{{.Name}}">{{.Label}}</label>
{{if eq .Kind "checkbox" -}}
<input type="checkbox" id="{{.Name}}" name="{{.Name}}" value="true"{{if .Checked}} checked{{end}}>
{{- else if eq .Kind "select" -}}
<select id="{{.Name}}" name="{{.Name}}">{{range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end}}</select>
{{- else if eq .Kind "number" -}}
<input type="number" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}">
{{- else -}}
<input type="text" id="{{.Name}}" name="{{.Name}}" value="{{.Value}}">
{{- end}}
{{- range .Errors}}<p class="fw-error">{{.}}</p>{{end}}
</div>
{{end -}}
{{- define "groupopen" -}}
<fieldset class="fw-group" data-fw-path="{{.Name}}">
{{- range .Errors}}<p class="fw-error">{{.}}</p>{{end}}
{{end -}}
{{- define "groupclose" -}}
</fieldset>
{{end -}}
{{- define "errors" -}}
{{range .}}<p class="fw-error">{{.}}</p>
{{end}}
{{- end -}}
`))

// HTML renders the view's form structure as markup: one labeled input per
// field with its re-display value and inline errors, a fieldset per group
// carrying any errors attached to the group itself (validation wrappers
// report there), and repeated elements for sequence-valued fields.
func HTML(v formwork.View, opt HTMLOptions) (template.HTML, error) {
	pol := opt.Policy
	if pol == nil {
		pol = bluemonday.StrictPolicy()
	}
	var b strings.Builder
	if err := walkHTML(&b, v, v.Root(), v.Shape(), opt, pol); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

func walkHTML(b *strings.Builder, v formwork.View, at formwork.Path, n formwork.Node, opt HTMLOptions, pol *bluemonday.Policy) error {
	switch t := n.(type) {
	case formwork.Field:
		value, _ := v.FieldValue(at)
		data := fieldData{
			Name:   at.String(),
			Label:  pol.Sanitize(labelFor(at, opt)),
			Kind:   t.Kind,
			Value:  value,
			Errors: v.FieldErrors(at),
		}
		if t.Kind == formwork.KindCheckbox {
			data.Checked = isChecked(value)
		}
		for _, o := range t.Options {
			data.Options = append(data.Options, optionData{Value: o, Selected: o == value})
		}
		return htmlTmpl.ExecuteTemplate(b, "field", data)
	case formwork.Group:
		root := at.Equal(v.Root())
		if root {
			if errs := v.FieldErrors(at); len(errs) > 0 {
				if err := htmlTmpl.ExecuteTemplate(b, "errors", errs); err != nil {
					return err
				}
			}
		}
		if !root {
			if err := htmlTmpl.ExecuteTemplate(b, "groupopen", groupData{Name: at.String(), Errors: v.FieldErrors(at)}); err != nil {
				return err
			}
		}
		for _, name := range t.Names {
			if err := walkHTML(b, v, at.Child(name), t.Children[name], opt, pol); err != nil {
				return err
			}
		}
		if !root {
			return htmlTmpl.ExecuteTemplate(b, "groupclose", nil)
		}
		return nil
	case formwork.List:
		idx := v.Indexes(at)
		if len(idx) == 0 {
			if v.Bound() {
				// the submission had no elements; re-display it that way
				return nil
			}
			// fresh form: show one blank element to type into
			return walkHTML(b, v, at.Child("0"), t.Elem, opt, pol)
		}
		for _, i := range idx {
			if err := walkHTML(b, v, at.Child(strconv.Itoa(i)), t.Elem, opt, pol); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func labelFor(at formwork.Path, opt HTMLOptions) string {
	if l, ok := opt.Labels[at.String()]; ok {
		return l
	}
	segs := at.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

func isChecked(value string) bool {
	switch strings.ToLower(value) {
	case "true", "on", "1", "checked":
		return true
	}
	return false
}
