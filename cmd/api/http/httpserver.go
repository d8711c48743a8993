package http

import (
	"fmt"
	"net/http"
)

type ServerConfig struct {
	Port int
}

func NewServer(config ServerConfig, h *LibraryHandler) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", ping)
	mux.HandleFunc("/books", h.books)
	mux.HandleFunc("/books/available", h.availableBooks)
	mux.HandleFunc("/books/", h.bookById)
	mux.HandleFunc("/members", h.members)
	mux.HandleFunc("/members/", h.memberById)
	mux.HandleFunc("/transactions/borrow", h.borrow)
	mux.HandleFunc("/transactions/overdue", h.overdueTransactions)
	mux.HandleFunc("/transactions/", h.transactionById)
	mux.HandleFunc("/fines/", h.fineById)

	server := http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: mux,
	}
	return &server
}

/* Tests the http server connection.  */
func ping(w http.ResponseWriter, r *http.Request) {
	method := r.Method
	if method == http.MethodGet {
		w.WriteHeader(http.StatusNoContent)
		return
	} else {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
}
