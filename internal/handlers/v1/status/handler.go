package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/walletsync/internal/logging"
	"github.com/carson-networks/walletsync/internal/pipeline"
)

type chainLister interface {
	Statuses() []pipeline.ChainStatus
}

type Response struct {
	Chains []pipeline.ChainStatus `json:"chains"`
}

type Handler struct {
	Chains chainLister
}

func NewHandler(chains chainLister) Handler {
	return Handler{Chains: chains}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	chains := h.Chains.Statuses()
	if chains == nil {
		chains = []pipeline.ChainStatus{}
	}
	logData.AddData("chains", len(chains))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(Response{Chains: chains})
}
