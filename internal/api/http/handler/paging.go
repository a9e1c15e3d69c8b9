package handler

import (
	"net/http"
	"strconv"

	"github.com/fleetbay/fleetbay-server/internal/model"
)

// pageRequestFromQuery reads the optional pageNumber/pageSize parameters.
// When neither is present the caller wants the full, unpaged list.
func pageRequestFromQuery(r *http.Request) (model.PageRequest, bool) {
	q := r.URL.Query()
	numberParam := q.Get("pageNumber")
	sizeParam := q.Get("pageSize")
	if numberParam == "" && sizeParam == "" {
		return model.PageRequest{}, false
	}

	number, _ := strconv.Atoi(numberParam)
	size, _ := strconv.Atoi(sizeParam)
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = model.DefaultPageSize
	}

	return model.PageRequest{Number: number, Size: size}.Normalize(), true
}
