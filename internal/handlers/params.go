package handlers

import (
	"net/http"
	"strconv"
)

// getIDParam reads a numeric pat URL parameter such as :id.
func getIDParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.URL.Query().Get(":" + name))
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
