package controllers

import (
	"net/http"
)

const greeting = "Hello, World!"

type RootController struct{}

func NewRootController() *RootController {
	return &RootController{}
}

func (h *RootController) Greet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(greeting))
}
