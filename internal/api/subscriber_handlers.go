package api

import (
	"net/http"

	"github.com/ignite/listserv/internal/pkg/httputil"
	"github.com/ignite/listserv/internal/service/subscriber"
)

// HandleCreateSubscriber adds an address to one of the caller's lists
func (h *Handlers) HandleCreateSubscriber(w http.ResponseWriter, r *http.Request) {
	var in subscriber.CreateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	sub, err := h.subscribers.Create(r.Context(), currentUser(r), in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.Created(w, sub)
}

// HandleGetSubscribers returns the subscribers of a list. The path segment
// shared with the per-subscriber routes holds the list id here.
//
//	GET /subscribers/{id}
func (h *Handlers) HandleGetSubscribers(w http.ResponseWriter, r *http.Request) {
	listID, ok := httputil.IDParam(w, r, "id")
	if !ok {
		return
	}
	subs, err := h.subscribers.List(r.Context(), currentUser(r), listID)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, nonNil(subs))
}

// HandleUpdateSubscriber changes a subscriber's address
func (h *Handlers) HandleUpdateSubscriber(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "id")
	if !ok {
		return
	}
	var in subscriber.UpdateInput
	if !httputil.Decode(w, r, &in) {
		return
	}
	sub, err := h.subscribers.Update(r.Context(), currentUser(r), id, in)
	if err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.OK(w, sub)
}

// HandleDeleteSubscriber unsubscribes an address
func (h *Handlers) HandleDeleteSubscriber(w http.ResponseWriter, r *http.Request) {
	id, ok := httputil.IDParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.subscribers.Delete(r.Context(), currentUser(r), id); err != nil {
		respondErr(w, r, err)
		return
	}
	httputil.NoContent(w)
}
