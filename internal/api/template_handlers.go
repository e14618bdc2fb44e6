package api

import (
	"net/http"

	"github.com/ignite/listserv/internal/pkg/httputil"
	"github.com/ignite/listserv/internal/service/template"
)

// PreviewRequest carries the variables a preview is rendered with.
type PreviewRequest struct {
	Variables map[string]any `json:"variables"`
}

// PreviewResponse is the body returned by a template preview.
type PreviewResponse struct {
	Rendered string `json:"rendered"`
}

// HandleCreateTemplate stores a template owned by the caller
func (h *Handlers) HandleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var in template.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	t, err := h.templates.Create(r.Context(), currentUser(r), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.Created(w, t)
}

// HandleGetTemplates returns the caller's templates
func (h *Handlers) HandleGetTemplates(w http.ResponseWriter, r *http.Request) {
	ts, err := h.templates.List(r.Context(), currentUser(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, nonNil(ts))
}

// HandleGetTemplate returns a single template
func (h *Handlers) HandleGetTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "template_id")
	if !ok {
		return
	}
	t, err := h.templates.Get(r.Context(), currentUser(r), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, t)
}

// HandleUpdateTemplate changes a template's name and/or content
func (h *Handlers) HandleUpdateTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "template_id")
	if !ok {
		return
	}
	var in template.UpdateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	t, err := h.templates.Update(r.Context(), currentUser(r), id, in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, t)
}

// HandleDeleteTemplate deletes a template. A template owned by someone else
// is a 403, not a 404.
func (h *Handlers) HandleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "template_id")
	if !ok {
		return
	}
	if err := h.templates.Delete(r.Context(), currentUser(r), id); err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.NoContent(w)
}

// HandlePreviewTemplate renders a template with the posted variables. The
// body is optional.
//
//	POST /templates/{template_id}/preview
func (h *Handlers) HandlePreviewTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "template_id")
	if !ok {
		return
	}
	var req PreviewRequest
	if r.ContentLength != 0 && !httputil.Decode(w, r, &req) {
		return
	}
	out, err := h.templates.Preview(r.Context(), currentUser(r), id, req.Variables)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, PreviewResponse{Rendered: out})
}
