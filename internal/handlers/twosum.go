package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/example/primesum/internal/store"
	"github.com/example/primesum/internal/twosum"
	"github.com/example/primesum/internal/types"
	"github.com/example/primesum/pkg/jsonutil"
)

// TwoSumHandler serves two-sum searches over a posted list of integers.
type TwoSumHandler struct {
	Store   store.Recorder // optional
	MaxNums int
}

func NewTwoSumHandler(rec store.Recorder, maxNums int) *TwoSumHandler {
	return &TwoSumHandler{Store: rec, MaxNums: maxNums}
}

// bytesPerNum covers a 20 digit int, sign, separator and some whitespace.
const (
	bytesPerNum      = 24
	bodyOverhead     = 1 << 10
	defaultBodyLimit = 1 << 20
)

// bodyLimit sizes the request body cap from MaxNums.
func (h *TwoSumHandler) bodyLimit() int64 {
	if h.MaxNums <= 0 {
		return defaultBodyLimit
	}
	return int64(h.MaxNums)*bytesPerNum + bodyOverhead
}

// ServeHTTP handles POST /api/two-sum
func (h *TwoSumHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.bodyLimit())
	var req types.TwoSumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonutil.Error(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		jsonutil.Error(w, http.StatusBadRequest, "bad request")
		return
	}
	if len(req.Nums) == 0 {
		jsonutil.Error(w, http.StatusBadRequest, "nums required")
		return
	}
	if h.MaxNums > 0 && len(req.Nums) > h.MaxNums {
		jsonutil.Error(w, http.StatusBadRequest, fmt.Sprintf("at most %d nums allowed", h.MaxNums))
		return
	}
	method, err := twosum.ParseMethod(req.Method)
	if err != nil {
		jsonutil.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := twosum.Solve(method, req.Nums, req.Target)
	run := store.Run{Kind: store.KindTwoSum, Nums: req.Nums, Target: req.Target, Method: string(method)}
	if errors.Is(err, twosum.ErrNotFound) {
		record(r.Context(), h.Store, run)
		jsonutil.Error(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		jsonutil.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	run.Found, run.I, run.J = true, pair.I, pair.J
	record(r.Context(), h.Store, run)

	jsonutil.JSON(w, http.StatusOK, types.TwoSumResponse{
		Method:  string(method),
		Indices: pair.Indices(),
		Values:  []int{req.Nums[pair.I], req.Nums[pair.J]},
	})
}
