package api

import (
	"net/http"

	"github.com/ignite/listserv/internal/pkg/httputil"
	"github.com/ignite/listserv/internal/service/mailinglist"
)

// HandleCreateList creates a list owned by the caller
func (h *Handlers) HandleCreateList(w http.ResponseWriter, r *http.Request) {
	var in mailinglist.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	l, err := h.lists.Create(r.Context(), currentUser(r), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.Created(w, l)
}

// HandleGetLists returns the caller's lists
func (h *Handlers) HandleGetLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.List(r.Context(), currentUser(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, nonNil(lists))
}

// HandleGetList returns a single list
func (h *Handlers) HandleGetList(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "mailing_list_id")
	if !ok {
		return
	}
	l, err := h.lists.Get(r.Context(), currentUser(r), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, l)
}

// HandleUpdateList renames a list
func (h *Handlers) HandleUpdateList(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "mailing_list_id")
	if !ok {
		return
	}
	var in mailinglist.UpdateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	l, err := h.lists.Update(r.Context(), currentUser(r), id, in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, l)
}

// HandleDeleteList deletes a list and its subscribers
func (h *Handlers) HandleDeleteList(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "mailing_list_id")
	if !ok {
		return
	}
	if err := h.lists.Delete(r.Context(), currentUser(r), id); err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.NoContent(w)
}
