package api

import (
	"net/http"

	"github.com/ignite/listserv/internal/pkg/httputil"
	"github.com/ignite/listserv/internal/pkg/logger"
	"github.com/ignite/listserv/internal/service/mailing"
)

// HandleCreateMailing schedules one of the caller's templates against one
// of the caller's lists
func (h *Handlers) HandleCreateMailing(w http.ResponseWriter, r *http.Request) {
	var in mailing.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	m, err := h.mailings.Create(r.Context(), currentUser(r), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.Created(w, m)
}

// HandleGetMailings returns the caller's mailings
func (h *Handlers) HandleGetMailings(w http.ResponseWriter, r *http.Request) {
	ms, err := h.mailings.List(r.Context(), currentUser(r))
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, nonNil(ms))
}

// HandleGetAllMailings returns every mailing in the system. Admin only.
func (h *Handlers) HandleGetAllMailings(w http.ResponseWriter, r *http.Request) {
	ms, err := h.mailings.ListAll(r.Context())
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, nonNil(ms))
}

// HandleGetMailing returns a single mailing
func (h *Handlers) HandleGetMailing(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "mailing_id")
	if !ok {
		return
	}
	m, err := h.mailings.Get(r.Context(), currentUser(r), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, m)
}

// HandleSendMailing stamps sent_at on a mailing. Nothing is delivered.
//
//	POST /mailings/{mailing_id}/send
func (h *Handlers) HandleSendMailing(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "mailing_id")
	if !ok {
		return
	}
	m, err := h.mailings.Send(r.Context(), currentUser(r), id)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	logger.Info("mailing sent", "mailing_id", m.ID, "mailing_list_id", m.MailingListID, "template_id", m.TemplateID)
	httputil.OK(w, m)
}

// HandleDeleteMailing deletes a mailing
func (h *Handlers) HandleDeleteMailing(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "mailing_id")
	if !ok {
		return
	}
	if err := h.mailings.Delete(r.Context(), currentUser(r), id); err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.NoContent(w)
}
