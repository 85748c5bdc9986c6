package v1

import (
	"embed"
	"html/template"
	"io"

	"github.com/kurochkinivan/tango_form/internal/domain"
	"github.com/kurochkinivan/tango_form/internal/form"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/form.html"))

type pageView struct {
	form.State
	// PreviewURL is the preview marked safe for the img src attribute.
	PreviewURL template.URL
	Loading    bool
	Succeeded  bool
}

func renderPage(w io.Writer, state form.State) error {
	return pageTemplate.Execute(w, pageView{
		State:      state,
		PreviewURL: template.URL(state.Preview()),
		Loading:    state.Status == domain.StatusLoading,
		Succeeded:  state.Status == domain.StatusSuccess,
	})
}
